// Command gcal-auth authorizes Google Calendar access for OAuth desktop
// credentials and writes the token file read by the API's calendar sync.
// Service account credentials need no token and do not use this command.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:          "gcal-auth",
		Short:        "Authorize Google Calendar and save token.json",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}
			cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("parse credentials (expected an OAuth desktop app file): %w", err)
			}

			tok, err := authorize(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := saveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nToken saved to %s. Restart the API to enable calendar sync.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth desktop app credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "where to write the token")
	return cmd
}

func authorize(ctx context.Context, cfg *oauth2.Config, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintln(out, "1. Open this URL in a browser and sign in:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code here and press Enter: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("no authorization code entered")
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

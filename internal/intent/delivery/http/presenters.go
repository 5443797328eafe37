package http

type classifyReq struct {
	Text string `json:"text"`
}

package di

import (
	"os"
	"time"

	"stock_analyzer/internal/notify"
	infrahttp "stock_analyzer/internal/platform/http"
)

// NewServerChanSender creates the WeChat push sender from environment
// configuration. The sender refuses to send when no key is set.
func NewServerChanSender() *notify.ServerChanSender {
	cfg := notify.Config{Key: os.Getenv("SERVERCHAN_KEY")}
	return notify.NewServerChanSender(cfg, infrahttp.NewHTTPClient(15*time.Second))
}

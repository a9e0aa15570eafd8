package notify

// SecurityConfig holds notification webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// Notification is a payment notification captured on the phone and forwarded
// by the companion app.
type Notification struct {
	App      string `json:"app"`       // package or app name, e.g. "com.eg.android.AlipayGphone"
	Title    string `json:"title"`     // notification title
	Text     string `json:"text"`      // notification body
	PostedAt string `json:"posted_at"` // RFC3339; empty means now
}

// ParsedPayment is the transaction-shaped extraction from a notification.
type ParsedPayment struct {
	Amount   float64
	Type     string // "expense" | "income"
	Merchant string
	Channel  string // 支付宝 | 微信 | 银行
}

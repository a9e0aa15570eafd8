package notify

import (
	"regexp"
	"strconv"
	"strings"
)

// Payment channels
const (
	ChannelAlipay = "支付宝"
	ChannelWeChat = "微信"
	ChannelBank   = "银行"
)

// channelRule identifies which payment app produced a notification. Ordered:
// the first matching rule wins, so app-package checks come before the looser
// text checks.
type channelRule struct {
	channel string
	match   func(n Notification) bool
}

var channelTable = []channelRule{
	{ChannelAlipay, func(n Notification) bool {
		return strings.Contains(n.App, "Alipay") || strings.Contains(n.App, "alipay")
	}},
	{ChannelWeChat, func(n Notification) bool {
		return strings.Contains(n.App, "com.tencent.mm")
	}},
	{ChannelAlipay, func(n Notification) bool {
		return strings.Contains(n.Title, "支付宝") || strings.Contains(n.Text, "支付宝")
	}},
	{ChannelWeChat, func(n Notification) bool {
		return strings.Contains(n.Title, "微信支付") || strings.Contains(n.Text, "微信支付")
	}},
	{ChannelBank, func(n Notification) bool {
		return strings.Contains(n.Title, "银行") || strings.Contains(n.Text, "银行卡")
	}},
}

var (
	// 25.50元 / ¥25.50 / ￥25.50
	amountYuanRe   = regexp.MustCompile(`([0-9]+(?:\.[0-9]{1,2})?)\s*元`)
	amountSymbolRe = regexp.MustCompile(`[¥￥]\s*([0-9]+(?:\.[0-9]{1,2})?)`)

	// 向美团付款 / 在沃尔玛消费
	merchantRe = regexp.MustCompile(`[向在]([^0-9，。,\s]{1,20}?)(?:付款|消费|支付)`)
)

var incomeKeywords = []string{"收款", "到账", "入账", "退款"}

var expenseKeywords = []string{"付款", "支付成功", "消费", "扣款", "支出"}

// ParsePayment extracts a transaction from a payment notification. Returns
// false when the notification is not from a known payment channel, carries no
// recognizable amount, or has no payment direction keyword.
func ParsePayment(n Notification) (ParsedPayment, bool) {
	channel, ok := matchChannel(n)
	if !ok {
		return ParsedPayment{}, false
	}

	text := n.Title + " " + n.Text

	amount, ok := extractAmount(text)
	if !ok {
		return ParsedPayment{}, false
	}

	// Income keywords are checked first: a refund notification ("退款")
	// often also mentions the original 支付, and the money direction of
	// the notification itself is inbound.
	typ := ""
	for _, kw := range incomeKeywords {
		if strings.Contains(text, kw) {
			typ = "income"
			break
		}
	}
	if typ == "" {
		for _, kw := range expenseKeywords {
			if strings.Contains(text, kw) {
				typ = "expense"
				break
			}
		}
	}
	if typ == "" {
		return ParsedPayment{}, false
	}

	return ParsedPayment{
		Amount:   amount,
		Type:     typ,
		Merchant: extractMerchant(text),
		Channel:  channel,
	}, true
}

func matchChannel(n Notification) (string, bool) {
	for _, rule := range channelTable {
		if rule.match(n) {
			return rule.channel, true
		}
	}
	return "", false
}

func extractAmount(text string) (float64, bool) {
	match := amountYuanRe.FindStringSubmatch(text)
	if match == nil {
		match = amountSymbolRe.FindStringSubmatch(text)
	}
	if match == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}

func extractMerchant(text string) string {
	match := merchantRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

package telegram

import "encoding/json"

// User is a Telegram user or bot.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

// Chat is the conversation a message belongs to.
type Chat struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
}

// Message is an incoming or sent message. Only the fields the launcher reads
// are decoded.
type Message struct {
	MessageID int64                 `json:"message_id"`
	From      *User                 `json:"from,omitempty"`
	Chat      Chat                  `json:"chat"`
	Date      int64                 `json:"date"`
	Text      string                `json:"text,omitempty"`
	Markup    *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// Update is one entry of getUpdates or one webhook delivery.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// WebAppInfo names the mini app a button opens.
type WebAppInfo struct {
	URL string `json:"url"`
}

// InlineKeyboardButton is one button under a message.
type InlineKeyboardButton struct {
	Text   string      `json:"text"`
	URL    string      `json:"url,omitempty"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

// InlineKeyboardMarkup is a grid of buttons, row by row.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// SendOptions are the optional sendMessage parameters.
type SendOptions struct {
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
	ParseMode   string                `json:"parse_mode,omitempty"`
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
	SendOptions
}

type getUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Timeout        int      `json:"timeout,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

type setWebhookRequest struct {
	URL            string   `json:"url"`
	SecretToken    string   `json:"secret_token,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

type deleteWebhookRequest struct {
	DropPendingUpdates bool `json:"drop_pending_updates,omitempty"`
}

// envelope is the response wrapper of every Bot API method.
type envelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}

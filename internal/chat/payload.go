package chat

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// fields разбирает payload события, ничего не отвергая:
// неизвестная форма или неверный тип дают нулевое значение.
type fields map[string]json.RawMessage

func parseFields(data json.RawMessage) fields {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return fields{}
	}
	return f
}

// String возвращает поле как строку. Числа и bool остаются в виде литерала.
func (f fields) String(key string) string {
	raw := bytes.TrimSpace(f[key])
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 't', 'f', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw)
	}
	return ""
}

// Truthy — истинность значения по правилам JavaScript (0, "", null, false — ложь).
func (f fields) Truthy(key string) bool {
	raw := bytes.TrimSpace(f[key])
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		return f.String(key) != ""
	}
	n, err := strconv.ParseFloat(string(raw), 64)
	return err == nil && n != 0
}

// JoinRequest — payload события join
type JoinRequest struct {
	Username string
	Role     string
	UserID   string
}

// HistoryRequest — payload события get-chat-history
type HistoryRequest struct {
	UserID string
}

// SendRequest — payload события send-message
type SendRequest struct {
	UserID    string
	Username  string
	Message   string
	FromAdmin bool
}

func decodeJoin(data json.RawMessage) JoinRequest {
	f := parseFields(data)
	return JoinRequest{
		Username: f.String("username"),
		Role:     f.String("role"),
		UserID:   f.String("userId"),
	}
}

func decodeHistory(data json.RawMessage) HistoryRequest {
	return HistoryRequest{UserID: parseFields(data).String("userId")}
}

func decodeSend(data json.RawMessage) SendRequest {
	f := parseFields(data)
	return SendRequest{
		UserID:    f.String("userId"),
		Username:  f.String("username"),
		Message:   f.String("message"),
		FromAdmin: f.Truthy("fromAdmin"),
	}
}

package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/db"
)

// Callback actions. Callback data is "action[:arg[:arg]]" and must stay
// under the 64 byte Telegram limit.
const (
	cbLike         = "like"
	cbSkip         = "skip"
	cbBlock        = "block"
	cbMessage      = "msg"
	cbConversation = "conv"
	cbLikers       = "likers"
	cbBuy          = "buy"
	cbPay          = "pay"
	cbGender       = "gender"
	cbReligion     = "rel"
	cbLanguage     = "lang"
	cbDelete       = "delete"
	cbPhotosDone   = "photos"
)

type InlineButton struct {
	Text string
	Data string
}

func BuildInlineKeyboard(rows [][]InlineButton) tgbotapi.InlineKeyboardMarkup {
	keyboardRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.Data))
		}
		keyboardRows = append(keyboardRows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboardRows...)
}

func callbackData(action string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, action)
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, ":")
}

// parseCallback splits callback data into its action and arguments.
func parseCallback(data string) (action string, args []string) {
	parts := strings.Split(strings.TrimSpace(data), ":")
	return parts[0], parts[1:]
}

// argID parses args[i] as a positive id.
func argID(args []string, i int) (int64, bool) {
	if i >= len(args) {
		return 0, false
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// RenderProfile formats a profile card.
func RenderProfile(p db.Profile) string {
	var b strings.Builder
	name := p.FirstName
	if name == "" {
		name = "#" + strconv.FormatInt(p.ID, 10)
	}
	b.WriteString(name)
	if p.Age > 0 {
		fmt.Fprintf(&b, ", %d", p.Age)
	}
	if p.City != "" {
		fmt.Fprintf(&b, "\n%s", p.City)
	}
	if p.Religion != "" {
		fmt.Fprintf(&b, "\nReligion: %s", p.Religion)
	}
	if p.Bio != "" {
		fmt.Fprintf(&b, "\n\n%s", p.Bio)
	}
	return b.String()
}

func candidateKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return BuildInlineKeyboard([][]InlineButton{
		{
			{Text: "Like", Data: callbackData(cbLike, id)},
			{Text: "Skip", Data: callbackData(cbSkip, id)},
		},
		{
			{Text: "Message", Data: callbackData(cbMessage, id)},
			{Text: "Block", Data: callbackData(cbBlock, id)},
		},
	})
}

// profileCard renders p as a photo with caption, or as text when it has no
// photo.
func profileCard(chatID int64, p db.Profile, keyboard *tgbotapi.InlineKeyboardMarkup) tgbotapi.Chattable {
	caption := RenderProfile(p)
	if refs := p.PhotoRefs(); len(refs) > 0 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(refs[0]))
		photo.Caption = caption
		if keyboard != nil {
			photo.ReplyMarkup = *keyboard
		}
		return photo
	}
	msg := tgbotapi.NewMessage(chatID, caption)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	return msg
}

// positionedCard is a candidate card with its place in the session.
func positionedCard(chatID int64, res coordinator.BrowseResult, keyboard *tgbotapi.InlineKeyboardMarkup) tgbotapi.Chattable {
	card := profileCard(chatID, res.Candidate, keyboard)
	if res.Total == 0 {
		return card
	}
	suffix := fmt.Sprintf("\n\n%d/%d", res.Position, res.Total)
	switch c := card.(type) {
	case tgbotapi.PhotoConfig:
		c.Caption += suffix
		return c
	case tgbotapi.MessageConfig:
		c.Text += suffix
		return c
	}
	return card
}

// RenderOutbound turns a coordinator notice into a Telegram message.
func RenderOutbound(out coordinator.Outbound) tgbotapi.Chattable {
	switch out.Kind {
	case coordinator.KindMessage:
		header := fmt.Sprintf("New message from #%d", out.From)
		reply := BuildInlineKeyboard([][]InlineButton{{{Text: "Reply", Data: callbackData(cbMessage, out.From)}}})
		switch out.MessageKind {
		case db.MessageKindPhoto:
			photo := tgbotapi.NewPhoto(out.To, tgbotapi.FileID(out.MediaRef))
			photo.Caption = joinLines(header, out.Text)
			photo.ReplyMarkup = reply
			return photo
		case db.MessageKindVoice:
			voice := tgbotapi.NewVoice(out.To, tgbotapi.FileID(out.MediaRef))
			voice.Caption = joinLines(header, out.Text)
			voice.ReplyMarkup = reply
			return voice
		default:
			msg := tgbotapi.NewMessage(out.To, joinLines(header+":", out.Text))
			msg.ReplyMarkup = reply
			return msg
		}

	case coordinator.KindLike:
		msg := tgbotapi.NewMessage(out.To, "Someone liked your profile.")
		msg.ReplyMarkup = BuildInlineKeyboard([][]InlineButton{{{Text: "See who", Data: callbackData(cbLikers, "preview")}}})
		return msg

	case coordinator.KindMatch:
		msg := tgbotapi.NewMessage(out.To, fmt.Sprintf("It's a match with #%d.", out.From))
		msg.ReplyMarkup = BuildInlineKeyboard([][]InlineButton{{{Text: "Send a message", Data: callbackData(cbMessage, out.From)}}})
		return msg

	case coordinator.KindPayment:
		// a notice with a requester is the admin's review request
		if out.From == 0 || out.Ref == 0 {
			return tgbotapi.NewMessage(out.To, out.Text)
		}
		review := BuildInlineKeyboard([][]InlineButton{{
			{Text: "Approve", Data: callbackData(cbPay, "approve", out.Ref)},
			{Text: "Reject", Data: callbackData(cbPay, "reject", out.Ref)},
		}})
		text := fmt.Sprintf("%s\nfrom #%d", out.Text, out.From)
		if ref, ok := strings.CutPrefix(out.MediaRef, evidenceTextPrefix); ok {
			text = joinLines(text, "reference: "+ref)
		} else if out.MediaRef != "" {
			photo := tgbotapi.NewPhoto(out.To, tgbotapi.FileID(out.MediaRef))
			photo.Caption = text
			photo.ReplyMarkup = review
			return photo
		}
		msg := tgbotapi.NewMessage(out.To, text)
		msg.ReplyMarkup = review
		return msg

	default:
		return tgbotapi.NewMessage(out.To, out.Text)
	}
}

func joinLines(lines ...string) string {
	kept := lines[:0:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/db"
)

func TestParseCallback(t *testing.T) {
	cases := []struct {
		data   string
		action string
		args   []string
	}{
		{"like:42", cbLike, []string{"42"}},
		{"pay:approve:7", cbPay, []string{"approve", "7"}},
		{"likers:all", cbLikers, []string{"all"}},
		{"photos", cbPhotosDone, []string{}},
	}
	for _, c := range cases {
		action, args := parseCallback(c.data)
		assert.Equal(t, c.action, action, c.data)
		assert.Equal(t, c.args, args, c.data)
	}

	assert.Equal(t, "pay:approve:7", callbackData(cbPay, "approve", uint64(7)))

	_, ok := argID([]string{"abc"}, 0)
	assert.False(t, ok)
	_, ok = argID([]string{"-3"}, 0)
	assert.False(t, ok)
	id, ok := argID([]string{"12"}, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)
}

func TestRenderProfile(t *testing.T) {
	text := RenderProfile(db.Profile{ID: 5, FirstName: "Hana", Age: 24, City: "Adama", Bio: "coffee"})
	assert.Equal(t, "Hana, 24\nAdama\n\ncoffee", text)

	assert.Equal(t, "#9", RenderProfile(db.Profile{ID: 9}))
}

func TestRenderOutbound(t *testing.T) {
	t.Run("text message has a reply button", func(t *testing.T) {
		c := RenderOutbound(coordinator.Outbound{To: 2, From: 1, Kind: coordinator.KindMessage, Text: "hi"})
		msg, ok := c.(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, int64(2), msg.ChatID)
		assert.Contains(t, msg.Text, "hi")
		kb := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		assert.Equal(t, "msg:1", *kb.InlineKeyboard[0][0].CallbackData)
	})

	t.Run("photo message", func(t *testing.T) {
		c := RenderOutbound(coordinator.Outbound{To: 2, From: 1, Kind: coordinator.KindMessage, MessageKind: db.MessageKindPhoto, MediaRef: "file-1"})
		photo, ok := c.(tgbotapi.PhotoConfig)
		require.True(t, ok)
		assert.Equal(t, tgbotapi.FileID("file-1"), photo.File)
	})

	t.Run("voice message", func(t *testing.T) {
		c := RenderOutbound(coordinator.Outbound{To: 2, From: 1, Kind: coordinator.KindMessage, MessageKind: db.MessageKindVoice, MediaRef: "v"})
		_, ok := c.(tgbotapi.VoiceConfig)
		assert.True(t, ok)
	})

	t.Run("payment review with receipt photo", func(t *testing.T) {
		c := RenderOutbound(coordinator.Outbound{To: 900, From: 1, Kind: coordinator.KindPayment, Text: "payment #3", MediaRef: "receipt", Ref: 3})
		photo, ok := c.(tgbotapi.PhotoConfig)
		require.True(t, ok)
		kb := photo.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		assert.Equal(t, "pay:approve:3", *kb.InlineKeyboard[0][0].CallbackData)
		assert.Equal(t, "pay:reject:3", *kb.InlineKeyboard[0][1].CallbackData)
	})

	t.Run("payment review with typed reference", func(t *testing.T) {
		c := RenderOutbound(coordinator.Outbound{To: 900, From: 1, Kind: coordinator.KindPayment, Text: "payment #3", MediaRef: evidenceTextPrefix + "TX-1", Ref: 3})
		msg, ok := c.(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Contains(t, msg.Text, "reference: TX-1")
	})

	t.Run("payment outcome to the user is plain text", func(t *testing.T) {
		c := RenderOutbound(coordinator.Outbound{To: 1, Kind: coordinator.KindPayment, Text: "approved"})
		msg, ok := c.(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Nil(t, msg.ReplyMarkup)
	})
}

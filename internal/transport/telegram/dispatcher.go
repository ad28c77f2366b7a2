package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/oggyb/matchbot/internal/app"
	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/registration"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

// evidenceTextPrefix marks a typed transaction reference, as opposed to a
// receipt photo file id.
const evidenceTextPrefix = "txn:"

// sharedLocationCity is stored as the city when the user shares coordinates.
const sharedLocationCity = "Shared location"

const pendingPaymentsLimit = 20

type step int

const (
	stepNone step = iota
	stepName
	stepPhone
	stepAge
	stepGender
	stepReligion
	stepLanguage
	stepCity
	stepBio
	stepPhotos
	stepMessage
	stepEvidence
)

// chatState is what the next plain message from a user means.
type chatState struct {
	step   step
	target int64
	pkg    string
}

// Dispatcher routes updates to the coordinator and registration services.
// Replies go out through Sender; notices to other users go through the
// coordinator's transport.
type Dispatcher struct {
	app     *app.AppContext
	out     Sender
	log     *slog.Logger
	adminID int64

	mu     sync.Mutex
	states map[int64]chatState
}

// NewDispatcher creates a dispatcher and hooks the delayed registration
// finalize so the user hears about it.
func NewDispatcher(appCtx *app.AppContext, out Sender) *Dispatcher {
	d := &Dispatcher{
		app:     appCtx,
		out:     out,
		log:     appCtx.Logger.With("subsystem", "telegram"),
		adminID: appCtx.Config.Bot.AdminID,
		states:  make(map[int64]chatState),
	}
	appCtx.Registration.OnFinalize = d.onFinalized
	return d
}

func (d *Dispatcher) state(userID int64) chatState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.states[userID]
}

func (d *Dispatcher) setState(userID int64, s chatState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s.step == stepNone {
		delete(d.states, userID)
		return
	}
	d.states[userID] = s
}

// Handle is the UpdateHandler for Bot.Listen.
func (d *Dispatcher) Handle(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		d.handleMessage(ctx, update.Message)
	}
	if update.CallbackQuery != nil {
		d.handleCallback(ctx, update.CallbackQuery)
	}
}

func (d *Dispatcher) send(c tgbotapi.Chattable) {
	if err := d.out.Send(c); err != nil {
		d.log.Warn("telegram send failed", "err", err)
	}
}

func (d *Dispatcher) reply(chatID int64, text string) {
	d.send(tgbotapi.NewMessage(chatID, text))
}

func (d *Dispatcher) replyWithKeyboard(chatID int64, text string, rows [][]InlineButton) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = BuildInlineKeyboard(rows)
	d.send(msg)
}

// replyErr answers with a user-facing text for known errors and logs the rest.
func (d *Dispatcher) replyErr(chatID int64, err error) {
	var text string
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, ledger.ErrUserNotFound):
		text = "Please send /start first."
	case errors.Is(err, coordinator.ErrIncompleteProfile), errors.Is(err, repository.ErrNoGender):
		text = "Finish your profile first with /start."
	case errors.Is(err, session.ErrNoCandidates), errors.Is(err, session.ErrDepleted):
		text = "No more profiles right now. Try /search again later."
	case errors.Is(err, session.ErrCoolingDown):
		text = "Please wait a little before searching again."
	case errors.Is(err, session.ErrNoSession):
		text = "Start browsing with /search."
	case errors.Is(err, coordinator.ErrSelfAction):
		text = "You can't do that to yourself."
	case errors.Is(err, coordinator.ErrBlocked):
		text = "This conversation is blocked."
	case errors.Is(err, coordinator.ErrEmptyMessage):
		text = "The message is empty."
	case errors.Is(err, coordinator.ErrUnknownPackage):
		text = "Unknown coin package. See /coins."
	case errors.Is(err, registration.ErrAlreadyRegistered):
		text = "Your profile is already registered."
	case errors.Is(err, registration.ErrDuplicatePhoto):
		text = "You already sent that photo."
	case errors.Is(err, registration.ErrTooManyPhotos):
		text = "That's enough photos."
	case errors.Is(err, repository.ErrInvalidTransition):
		text = "This payment was already reviewed."
	case errors.Is(err, registration.ErrInvalidField), errors.Is(err, coordinator.ErrInvalidComplaint):
		text = err.Error()
	default:
		d.log.Error("telegram handler failed", "chat", chatID, "err", err)
		text = "Something went wrong, please try again."
	}
	d.reply(chatID, text)
}

//
// Messages
//

func (d *Dispatcher) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	if m.From == nil || m.Chat == nil {
		return
	}
	if m.IsCommand() {
		d.handleCommand(ctx, m)
		return
	}

	userID, chatID := m.From.ID, m.Chat.ID
	st := d.state(userID)
	switch st.step {
	case stepPhone:
		if m.Contact != nil {
			d.wizardApply(ctx, chatID, userID, stepPhone, repository.ProfileUpdate{Phone: &m.Contact.PhoneNumber})
			return
		}
		d.wizardText(ctx, chatID, userID, st.step, strings.TrimSpace(m.Text))
	case stepCity:
		if m.Location != nil {
			city := sharedLocationCity
			d.wizardApply(ctx, chatID, userID, stepCity, repository.ProfileUpdate{
				City:      &city,
				Latitude:  &m.Location.Latitude,
				Longitude: &m.Location.Longitude,
			})
			return
		}
		d.wizardText(ctx, chatID, userID, st.step, strings.TrimSpace(m.Text))
	case stepName, stepAge, stepGender, stepReligion, stepLanguage, stepBio:
		d.wizardText(ctx, chatID, userID, st.step, strings.TrimSpace(m.Text))
	case stepPhotos:
		d.wizardPhoto(ctx, chatID, userID, m)
	case stepMessage:
		d.relayMessage(ctx, chatID, userID, st.target, m)
	case stepEvidence:
		d.submitEvidence(ctx, chatID, userID, st.pkg, m)
	default:
		if largestPhoto(m) != "" {
			// a photo outside any flow continues an unfinished registration
			d.wizardPhoto(ctx, chatID, userID, m)
			return
		}
		d.reply(chatID, helpText)
	}
}

const helpText = `/search - browse profiles
/likes - who liked you
/matches - your matches
/messages - your conversations
/myprofile - how others see you
/language - change language
/coins - balance and coin packages
/complain <type> <text> - report a problem
/cancel - stop the current action
/deleteaccount - delete your profile`

func (d *Dispatcher) handleCommand(ctx context.Context, m *tgbotapi.Message) {
	userID, chatID := m.From.ID, m.Chat.ID
	switch m.Command() {
	case "start":
		d.start(ctx, chatID, m.From)
	case "search", "browse":
		d.setState(userID, chatState{})
		d.browse(ctx, chatID, userID)
	case "myprofile", "profile":
		d.myProfile(ctx, chatID, userID)
	case "language":
		d.languageMenu(ctx, chatID, userID)
	case "messages":
		d.conversations(ctx, chatID, userID)
	case "addcoins":
		d.addCoins(ctx, chatID, userID, m.CommandArguments())
	case "pending":
		d.pendingPayments(ctx, chatID, userID)
	case "likes":
		d.likersPreview(ctx, chatID, userID)
	case "matches":
		d.matches(ctx, chatID, userID)
	case "coins", "balance":
		d.coins(ctx, chatID, userID)
	case "cancel":
		d.setState(userID, chatState{})
		d.app.Coordinator.CancelSession(userID)
		d.reply(chatID, "Cancelled.")
	case "deleteaccount":
		d.replyWithKeyboard(chatID, "Delete your profile and everything linked to it? This cannot be undone.",
			[][]InlineButton{{{Text: "Yes, delete", Data: callbackData(cbDelete, "confirm")}}})
	case "complain":
		d.complain(ctx, chatID, userID, m.CommandArguments())
	default:
		d.reply(chatID, helpText)
	}
}

func (d *Dispatcher) start(ctx context.Context, chatID int64, from *tgbotapi.User) {
	if _, err := d.app.Registration.Register(ctx, from.ID, from.UserName, from.FirstName, from.LastName); err != nil {
		d.replyErr(chatID, err)
		return
	}
	p, err := d.app.Profiles.Get(ctx, from.ID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if p.Registered {
		d.reply(chatID, "Welcome back!\n\n"+helpText)
		return
	}
	d.setState(from.ID, chatState{step: stepName})
	d.reply(chatID, "Welcome! Let's set up your profile.\nWhat's your name?")
}

//
// Registration wizard
//

func (d *Dispatcher) wizardText(ctx context.Context, chatID, userID int64, st step, text string) {
	var u repository.ProfileUpdate
	switch st {
	case stepName:
		u.FirstName = &text
	case stepAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			d.reply(chatID, "Please send your age as a number.")
			return
		}
		u.Age = &age
	case stepPhone:
		u.Phone = &text
	case stepGender:
		u.Gender = &text
	case stepReligion:
		u.Religion = &text
	case stepLanguage:
		u.Language = &text
	case stepCity:
		u.City = &text
	case stepBio:
		u.Bio = &text
	}
	d.wizardApply(ctx, chatID, userID, st, u)
}

// wizardApply stores one answer and asks the next question.
func (d *Dispatcher) wizardApply(ctx context.Context, chatID, userID int64, st step, u repository.ProfileUpdate) {
	if err := d.app.Registration.UpdateProfile(ctx, userID, u); err != nil {
		d.replyErr(chatID, err)
		return
	}

	next := st + 1
	d.setState(userID, chatState{step: next})
	switch next {
	case stepPhone:
		msg := tgbotapi.NewMessage(chatID, "Share your phone number, or type it.")
		kb := tgbotapi.NewOneTimeReplyKeyboard(tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonContact("Share phone number")))
		kb.ResizeKeyboard = true
		msg.ReplyMarkup = kb
		d.send(msg)
	case stepAge:
		msg := tgbotapi.NewMessage(chatID, "How old are you?")
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		d.send(msg)
	case stepReligion:
		rows := make([][]InlineButton, 0, len(registration.Religions)/2+1)
		for i := 0; i < len(registration.Religions); i += 2 {
			row := []InlineButton{}
			for _, r := range registration.Religions[i:min(i+2, len(registration.Religions))] {
				row = append(row, InlineButton{Text: r, Data: callbackData(cbReligion, r)})
			}
			rows = append(rows, row)
		}
		d.replyWithKeyboard(chatID, "Your religion? Pick one or type it if it is not on the list.", rows)
	case stepGender:
		d.replyWithKeyboard(chatID, "Your gender?", [][]InlineButton{{
			{Text: "Male", Data: callbackData(cbGender, db.GenderMale)},
			{Text: "Female", Data: callbackData(cbGender, db.GenderFemale)},
		}})
	case stepLanguage:
		row := make([]InlineButton, 0, len(registration.Languages))
		for _, l := range registration.Languages {
			row = append(row, InlineButton{Text: l, Data: callbackData(cbLanguage, l)})
		}
		d.replyWithKeyboard(chatID, "Preferred language?", [][]InlineButton{row})
	case stepCity:
		msg := tgbotapi.NewMessage(chatID, "Which city do you live in? Type it or share your location.")
		kb := tgbotapi.NewOneTimeReplyKeyboard(tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonLocation("Share location")))
		kb.ResizeKeyboard = true
		msg.ReplyMarkup = kb
		d.send(msg)
	case stepBio:
		msg := tgbotapi.NewMessage(chatID, "Tell others a little about yourself.")
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		d.send(msg)
	case stepPhotos:
		rules := d.app.Config.Registration
		d.reply(chatID, fmt.Sprintf("Finally, send %d to %d photos of yourself.", rules.MinPhotos, rules.MaxPhotos))
	}
}

func (d *Dispatcher) wizardPhoto(ctx context.Context, chatID, userID int64, m *tgbotapi.Message) {
	ref := largestPhoto(m)
	if ref == "" {
		d.reply(chatID, "Please send a photo.")
		return
	}
	res, err := d.app.Registration.AddPhoto(ctx, userID, ref)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if res.Finalized {
		d.setState(userID, chatState{})
		d.reply(chatID, d.registeredText(userID))
		return
	}
	d.setState(userID, chatState{step: stepPhotos})
	d.replyWithKeyboard(chatID, fmt.Sprintf("Got %d photo(s). Send another or finish now.", res.Count),
		[][]InlineButton{{{Text: "Done", Data: callbackData(cbPhotosDone, "done")}}})
}

func (d *Dispatcher) registeredText(userID int64) string {
	balance, err := d.app.Coordinator.Balance(context.Background(), userID)
	if err != nil {
		return "Your profile is ready!\n\n" + helpText
	}
	return fmt.Sprintf("Your profile is ready! Balance: %d coins.\n\n%s", balance, helpText)
}

// onFinalized tells the user when the delayed finalize completed their
// registration. Finalizes triggered by a message are answered inline.
func (d *Dispatcher) onFinalized(f registration.Finalized) {
	if !f.ByTimer {
		return
	}
	d.setState(f.UserID, chatState{})
	d.reply(f.UserID, d.registeredText(f.UserID))
}

func largestPhoto(m *tgbotapi.Message) string {
	if len(m.Photo) == 0 {
		return ""
	}
	return m.Photo[len(m.Photo)-1].FileID
}

//
// Discovery
//

// browse shows the current candidate of an active session, or starts one.
func (d *Dispatcher) browse(ctx context.Context, chatID, userID int64) {
	res, ok := d.app.Coordinator.Resume(userID)
	if !ok {
		var err error
		if res, err = d.app.Coordinator.Browse(ctx, userID); err != nil {
			d.replyErr(chatID, err)
			return
		}
	}
	kb := candidateKeyboard(res.Candidate.ID)
	d.send(positionedCard(chatID, res, &kb))
}

// showStep presents where the session landed after an action.
func (d *Dispatcher) showStep(chatID int64, step coordinator.StepResult) {
	switch {
	case step.Next != nil:
		kb := candidateKeyboard(step.Next.ID)
		d.send(profileCard(chatID, *step.Next, &kb))
	case step.Depleted:
		d.reply(chatID, "That's everyone for now. Try /search again later.")
	}
}

func (d *Dispatcher) like(ctx context.Context, chatID, userID, target int64) {
	res, err := d.app.Coordinator.Like(ctx, userID, target)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	// a new match reaches both sides as a transport notice
	switch {
	case res.Unavailable:
		d.reply(chatID, "This profile is no longer available.")
	case res.Blocked:
		d.reply(chatID, "You can't like this profile.")
	case res.AlreadyLiked:
		d.reply(chatID, "You already liked this profile.")
	}
	d.showStep(chatID, res.StepResult)
}

func (d *Dispatcher) skip(ctx context.Context, chatID, userID, target int64) {
	step, err := d.app.Coordinator.Skip(ctx, userID, target)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	d.showStep(chatID, step)
}

func (d *Dispatcher) block(ctx context.Context, chatID, userID, target int64) {
	res, err := d.app.Coordinator.Block(ctx, userID, target)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if res.Unavailable {
		d.reply(chatID, "This profile is no longer available.")
	} else {
		d.reply(chatID, "Blocked. You won't see each other again.")
	}
	// move on if the blocked profile was on screen
	d.skip(ctx, chatID, userID, target)
}

//
// Likers and matches
//

func (d *Dispatcher) likersPreview(ctx context.Context, chatID, userID int64) {
	likers, next, err := d.app.Coordinator.LikersPage(ctx, userID, nil)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if len(likers) == 0 {
		d.reply(chatID, "Nobody liked you yet.")
		return
	}
	for _, l := range likers {
		kb := BuildInlineKeyboard([][]InlineButton{{
			{Text: "Like back", Data: callbackData(cbLike, l.Profile.ID)},
			{Text: "Block", Data: callbackData(cbBlock, l.Profile.ID)},
		}})
		d.send(profileCard(chatID, l.Profile, &kb))
	}
	if next != nil {
		cost := d.app.Coordinator.Settings().ViewAllLikersCost
		d.replyWithKeyboard(chatID, "There are more.",
			[][]InlineButton{{{Text: fmt.Sprintf("View all (%d coins)", cost), Data: callbackData(cbLikers, "all")}}})
	}
}

func (d *Dispatcher) viewAllLikers(ctx context.Context, chatID, userID int64) {
	res, err := d.app.Coordinator.ViewAllLikers(ctx, userID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	switch res.Status {
	case coordinator.ViewInsufficientFunds:
		d.reply(chatID, fmt.Sprintf("You need %d coins, you have %d. See /coins.", res.Cost, res.Balance))
	case coordinator.NoLikers:
		d.reply(chatID, "Nobody liked you yet.")
	case coordinator.NotCharged:
		d.reply(chatID, "Your balance changed, please try again.")
	case coordinator.Viewed:
		var b strings.Builder
		fmt.Fprintf(&b, "Everyone who liked you (%d coins spent, balance %d):\n", res.Cost, res.Balance)
		for _, l := range res.Likers {
			fmt.Fprintf(&b, "\n#%d %s", l.Profile.ID, l.Profile.FirstName)
		}
		d.reply(chatID, b.String())
	}
}

func (d *Dispatcher) matches(ctx context.Context, chatID, userID int64) {
	matches, err := d.app.Coordinator.Matches(ctx, userID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if len(matches) == 0 {
		d.reply(chatID, "No matches yet. Keep browsing with /search.")
		return
	}
	rows := make([][]InlineButton, 0, len(matches))
	for _, p := range matches {
		rows = append(rows, []InlineButton{{Text: "Message " + p.FirstName, Data: callbackData(cbMessage, p.ID)}})
	}
	d.replyWithKeyboard(chatID, fmt.Sprintf("You have %d match(es).", len(matches)), rows)
}

//
// Messaging
//

func (d *Dispatcher) relayMessage(ctx context.Context, chatID, userID, target int64, m *tgbotapi.Message) {
	req := coordinator.MessageRequest{From: userID, To: target, Kind: db.MessageKindText, Text: m.Text}
	switch {
	case largestPhoto(m) != "":
		req.Kind, req.MediaRef, req.Text = db.MessageKindPhoto, largestPhoto(m), m.Caption
	case m.Voice != nil:
		req.Kind, req.MediaRef, req.Text = db.MessageKindVoice, m.Voice.FileID, m.Caption
	}

	res, err := d.app.Coordinator.SendMessage(ctx, req)
	d.setState(userID, chatState{})
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	switch res.Status {
	case coordinator.Sent:
		d.reply(chatID, fmt.Sprintf("Message sent. Balance: %d coins.", res.Balance))
	case coordinator.SentNotCharged:
		d.reply(chatID, "Message sent.")
	case coordinator.InsufficientFunds:
		d.reply(chatID, fmt.Sprintf("A message costs %d coins, you have %d. See /coins.", res.Cost, res.Balance))
	case coordinator.DeliveryFailed:
		d.reply(chatID, "The message could not be delivered. You were not charged.")
	}
}

func (d *Dispatcher) conversations(ctx context.Context, chatID, userID int64) {
	matches, err := d.app.Coordinator.Matches(ctx, userID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if len(matches) == 0 {
		d.reply(chatID, "No conversations yet. Messages open up once you match.")
		return
	}
	rows := make([][]InlineButton, 0, len(matches))
	for _, p := range matches {
		rows = append(rows, []InlineButton{{Text: "Chat with " + p.FirstName, Data: callbackData(cbConversation, p.ID)}})
	}
	d.replyWithKeyboard(chatID, "Your conversations:", rows)
}

func (d *Dispatcher) conversation(ctx context.Context, chatID, userID, other int64) {
	msgs, err := d.app.Coordinator.Conversation(ctx, userID, other)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	reply := [][]InlineButton{{{Text: "Send a message", Data: callbackData(cbMessage, other)}}}
	if len(msgs) == 0 {
		d.replyWithKeyboard(chatID, "No messages yet.", reply)
		return
	}
	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteByte('\n')
		}
		who := fmt.Sprintf("#%d", m.SenderID)
		if m.SenderID == userID {
			who = "You"
		}
		body := m.Content
		if m.Kind != db.MessageKindText {
			body = strings.TrimSpace("[" + m.Kind + "] " + body)
		}
		fmt.Fprintf(&b, "%s: %s", who, body)
	}
	d.replyWithKeyboard(chatID, b.String(), reply)
}

//
// Coins and payments
//

func (d *Dispatcher) coins(ctx context.Context, chatID, userID int64) {
	balance, err := d.app.Coordinator.Balance(ctx, userID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	pkgs := coordinator.Packages()
	rows := make([][]InlineButton, 0, len(pkgs))
	for _, p := range pkgs {
		label := fmt.Sprintf("%d coins - %d.%02d", p.Coins, p.PriceCents/100, p.PriceCents%100)
		rows = append(rows, []InlineButton{{Text: label, Data: callbackData(cbBuy, p.ID)}})
	}
	d.replyWithKeyboard(chatID, fmt.Sprintf("Balance: %d coins.\nBuy more:", balance), rows)
}

func (d *Dispatcher) buy(chatID, userID int64, pkgID string) {
	pkg, ok := coordinator.LookupPackage(pkgID)
	if !ok {
		d.replyErr(chatID, coordinator.ErrUnknownPackage)
		return
	}
	d.setState(userID, chatState{step: stepEvidence, pkg: pkg.ID})
	d.reply(chatID, fmt.Sprintf("Pay %d.%02d and send a photo of the receipt or the transaction reference.",
		pkg.PriceCents/100, pkg.PriceCents%100))
}

func (d *Dispatcher) submitEvidence(ctx context.Context, chatID, userID int64, pkgID string, m *tgbotapi.Message) {
	evidence := largestPhoto(m)
	if evidence == "" {
		text := strings.TrimSpace(m.Text)
		if text == "" {
			d.reply(chatID, "Please send a receipt photo or the transaction reference.")
			return
		}
		evidence = evidenceTextPrefix + text
	}
	p, err := d.app.Coordinator.SubmitPayment(ctx, userID, pkgID, evidence)
	d.setState(userID, chatState{})
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	d.reply(chatID, fmt.Sprintf("Payment #%d submitted. You'll get %d coins once it is verified.", p.ID, p.Coins))
}

func (d *Dispatcher) reviewPayment(ctx context.Context, chatID, userID int64, args []string) {
	if !d.isAdmin(userID) {
		d.reply(chatID, "Not allowed.")
		return
	}
	if len(args) < 2 {
		return
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return
	}
	switch args[0] {
	case "approve":
		p, balance, err := d.app.Coordinator.ApprovePayment(ctx, id, userID)
		if err != nil {
			d.replyErr(chatID, err)
			return
		}
		d.reply(chatID, fmt.Sprintf("Payment #%d approved. User #%d balance: %d.", p.ID, p.UserID, balance))
	case "reject":
		p, err := d.app.Coordinator.RejectPayment(ctx, id, userID, "payment could not be verified")
		if err != nil {
			d.replyErr(chatID, err)
			return
		}
		d.reply(chatID, fmt.Sprintf("Payment #%d rejected.", p.ID))
	}
}

func (d *Dispatcher) isAdmin(userID int64) bool {
	return d.adminID != 0 && userID == d.adminID
}

// addCoins handles "/addcoins <user_id> <amount> [reason]".
func (d *Dispatcher) addCoins(ctx context.Context, chatID, userID int64, args string) {
	if !d.isAdmin(userID) {
		d.reply(chatID, "Not allowed.")
		return
	}
	fields := strings.Fields(args)
	if len(fields) < 2 {
		d.reply(chatID, "Usage: /addcoins <user_id> <amount> [reason]")
		return
	}
	target, ok := argID(fields, 0)
	amount, err := strconv.ParseInt(fields[1], 10, 64)
	if !ok || err != nil {
		d.reply(chatID, "Usage: /addcoins <user_id> <amount> [reason]")
		return
	}
	reason := strings.Join(fields[2:], " ")
	balance, err := d.app.Coordinator.AdminCredit(ctx, target, amount, reason)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	d.reply(chatID, fmt.Sprintf("Added %d coins to #%d. Balance: %d.", amount, target, balance))
}

func (d *Dispatcher) pendingPayments(ctx context.Context, chatID, userID int64) {
	if !d.isAdmin(userID) {
		d.reply(chatID, "Not allowed.")
		return
	}
	payments, err := d.app.Coordinator.ListPendingPayments(ctx, pendingPaymentsLimit)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if len(payments) == 0 {
		d.reply(chatID, "No pending payments.")
		return
	}
	for _, p := range payments {
		text := fmt.Sprintf("Payment #%d from #%d: %s, %d coins for %d.%02d",
			p.ID, p.UserID, p.PackageName, p.Coins, p.PriceCents/100, p.PriceCents%100)
		if ref, ok := strings.CutPrefix(p.EvidenceRef, evidenceTextPrefix); ok {
			text = joinLines(text, "reference: "+ref)
		}
		d.replyWithKeyboard(chatID, text, [][]InlineButton{{
			{Text: "Approve", Data: callbackData(cbPay, "approve", p.ID)},
			{Text: "Reject", Data: callbackData(cbPay, "reject", p.ID)},
		}})
	}
}

//
// Account
//

// myProfile shows the user's own card with up to two photos.
func (d *Dispatcher) myProfile(ctx context.Context, chatID, userID int64) {
	p, err := d.app.Profiles.Get(ctx, userID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if !p.Registered {
		d.reply(chatID, "Your profile is not complete yet. Send /start to finish it.")
		return
	}
	caption := fmt.Sprintf("%s\n\nLanguage: %s\nBalance: %d coins", RenderProfile(p), p.Language, p.Coins)
	refs := p.PhotoRefs()
	switch len(refs) {
	case 0:
		d.reply(chatID, caption)
	case 1:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(refs[0]))
		photo.Caption = caption
		d.send(photo)
	default:
		first := tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(refs[0]))
		first.Caption = caption
		d.send(tgbotapi.NewMediaGroup(chatID, []any{first, tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(refs[1]))}))
		if len(refs) > 2 {
			d.reply(chatID, fmt.Sprintf("You have %d photos in total.", len(refs)))
		}
	}
}

func (d *Dispatcher) languageMenu(ctx context.Context, chatID, userID int64) {
	p, err := d.app.Profiles.Get(ctx, userID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	row := make([]InlineButton, 0, len(registration.Languages))
	for _, l := range registration.Languages {
		row = append(row, InlineButton{Text: l, Data: callbackData(cbLanguage, l)})
	}
	d.replyWithKeyboard(chatID, fmt.Sprintf("Current language: %s. Choose a new one:", p.Language), [][]InlineButton{row})
}

func (d *Dispatcher) setLanguage(ctx context.Context, chatID, userID int64, lang string) {
	if err := d.app.Registration.UpdateProfile(ctx, userID, repository.ProfileUpdate{Language: &lang}); err != nil {
		d.replyErr(chatID, err)
		return
	}
	d.reply(chatID, "Language set to "+strings.ToLower(lang)+".")
}

func (d *Dispatcher) complain(ctx context.Context, chatID, userID int64, args string) {
	kind, text, _ := strings.Cut(strings.TrimSpace(args), " ")
	if kind == "" {
		d.reply(chatID, "Usage: /complain <type> <text>\nTypes: "+strings.Join(coordinator.ComplaintTypes, ", "))
		return
	}
	c, err := d.app.Coordinator.FileComplaint(ctx, coordinator.ComplaintRequest{UserID: userID, Type: kind, Text: text})
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	d.reply(chatID, fmt.Sprintf("Complaint #%d received. Thank you.", c.ID))
}

func (d *Dispatcher) deleteAccount(ctx context.Context, chatID, userID int64) {
	d.app.Registration.Cancel(userID)
	d.setState(userID, chatState{})
	deleted, err := d.app.Coordinator.DeleteAccount(ctx, userID)
	if err != nil {
		d.replyErr(chatID, err)
		return
	}
	if !deleted {
		d.reply(chatID, "There was no profile to delete.")
		return
	}
	d.reply(chatID, "Your profile was deleted. Send /start to begin again.")
}

//
// Callbacks
//

func (d *Dispatcher) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if q.From == nil {
		return
	}
	d.send(tgbotapi.NewCallback(q.ID, ""))

	userID := q.From.ID
	chatID := userID
	if q.Message != nil && q.Message.Chat != nil {
		chatID = q.Message.Chat.ID
	}

	action, args := parseCallback(q.Data)
	d.log.Debug("callback", "user", userID, "action", action, "args", args)

	switch action {
	case cbLike, cbSkip, cbBlock, cbMessage, cbConversation:
		target, ok := argID(args, 0)
		if !ok {
			return
		}
		switch action {
		case cbLike:
			d.like(ctx, chatID, userID, target)
		case cbSkip:
			d.skip(ctx, chatID, userID, target)
		case cbBlock:
			d.block(ctx, chatID, userID, target)
		case cbMessage:
			d.setState(userID, chatState{step: stepMessage, target: target})
			cost := d.app.Coordinator.Settings().MessageCost
			d.reply(chatID, fmt.Sprintf("Send your message (text, photo or voice). It costs %d coins. /cancel to abort.", cost))
		case cbConversation:
			d.conversation(ctx, chatID, userID, target)
		}
	case cbLikers:
		if len(args) > 0 && args[0] == "all" {
			d.viewAllLikers(ctx, chatID, userID)
			return
		}
		d.likersPreview(ctx, chatID, userID)
	case cbBuy:
		if len(args) > 0 {
			d.buy(chatID, userID, args[0])
		}
	case cbPay:
		d.reviewPayment(ctx, chatID, userID, args)
	case cbGender:
		if st := d.state(userID); st.step == stepGender && len(args) > 0 {
			d.wizardApply(ctx, chatID, userID, stepGender, repository.ProfileUpdate{Gender: &args[0]})
		}
	case cbReligion:
		if st := d.state(userID); st.step == stepReligion && len(args) > 0 {
			d.wizardApply(ctx, chatID, userID, stepReligion, repository.ProfileUpdate{Religion: &args[0]})
		}
	case cbLanguage:
		if len(args) == 0 {
			return
		}
		if st := d.state(userID); st.step == stepLanguage {
			d.wizardApply(ctx, chatID, userID, stepLanguage, repository.ProfileUpdate{Language: &args[0]})
			return
		}
		d.setLanguage(ctx, chatID, userID, args[0])
	case cbPhotosDone:
		_, finalized, err := d.app.Registration.Finalize(ctx, userID)
		if err != nil {
			d.replyErr(chatID, err)
			return
		}
		if finalized {
			d.setState(userID, chatState{})
			d.reply(chatID, d.registeredText(userID))
		}
	case cbDelete:
		if len(args) > 0 && args[0] == "confirm" {
			d.deleteAccount(ctx, chatID, userID)
		}
	}
}

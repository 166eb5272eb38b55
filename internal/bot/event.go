package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type eventKind int

const (
	eventUnknown eventKind = iota
	eventStart
	eventWebSearch
	eventContact
	eventText
	eventFile
)

// defaultFileName is the display name used when an attachment carries no filename.
const defaultFileName = "photo.jpg"

type sender struct {
	ID        int64
	FirstName string
	Username  string
}

type contactShare struct {
	UserID int64
	Phone  string
}

type fileAttachment struct {
	FileID   string
	FileName string
}

// event is the resolved form of one inbound message: the kind tag decides
// which of the optional payload fields is populated.
type event struct {
	Kind    eventKind
	ChatID  int64
	From    sender
	Text    string // message body for eventText, command arguments for eventWebSearch
	Contact *contactShare
	File    *fileAttachment
}

// classifyMessage resolves a raw platform message into a tagged event once,
// at the adapter boundary. Messages that match no known kind come back as
// eventUnknown and are dropped by the dispatch loop.
func classifyMessage(message *tgbotapi.Message) event {
	e := event{
		Kind:   eventUnknown,
		ChatID: message.Chat.ID,
	}
	if message.From != nil {
		e.From = sender{
			ID:        message.From.ID,
			FirstName: message.From.FirstName,
			Username:  message.From.UserName,
		}
	}

	switch {
	case message.IsCommand():
		switch message.Command() {
		case "start":
			e.Kind = eventStart
		case "websearch":
			e.Kind = eventWebSearch
			e.Text = message.CommandArguments()
		}
	case message.Contact != nil:
		e.Kind = eventContact
		e.Contact = &contactShare{
			UserID: message.Contact.UserID,
			Phone:  message.Contact.PhoneNumber,
		}
	case message.Document != nil:
		e.Kind = eventFile
		name := message.Document.FileName
		if name == "" {
			name = defaultFileName
		}
		e.File = &fileAttachment{
			FileID:   message.Document.FileID,
			FileName: name,
		}
	case len(message.Photo) > 0:
		// Highest-resolution variant is last.
		photo := message.Photo[len(message.Photo)-1]
		e.Kind = eventFile
		e.File = &fileAttachment{
			FileID:   photo.FileID,
			FileName: defaultFileName,
		}
	case message.Text != "":
		e.Kind = eventText
		e.Text = message.Text
	}

	return e
}

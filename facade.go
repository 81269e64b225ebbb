package stayhooks

import (
	"fmt"

	stayhookscommand "github.com/goliatone/go-stayhooks/command"
	stayhooksquery "github.com/goliatone/go-stayhooks/query"
)

type CommandQueryService interface {
	stayhookscommand.MutatingService
	stayhooksquery.WebhookReader
}

type Commands struct {
	CreateWebhook *stayhookscommand.CreateWebhookCommand
	UpdateWebhook *stayhookscommand.UpdateWebhookCommand
	RotateSecret  *stayhookscommand.RotateSecretCommand
	DeleteWebhook *stayhookscommand.DeleteWebhookCommand
	InvokeWebhook *stayhookscommand.InvokeWebhookCommand
	SendMessage   *stayhookscommand.SendMessageCommand
	SendEmbed     *stayhookscommand.SendEmbedCommand
	SendPoll      *stayhookscommand.SendPollCommand
	SendImage     *stayhookscommand.SendImageCommand
}

type Queries struct {
	ListWebhooks        *stayhooksquery.ListWebhooksQuery
	GetPermittedActions *stayhooksquery.GetPermittedActionsQuery
}

// Facade exposes the client operations as go-command handlers.
type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("stayhooks: command/query service is required")
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		CreateWebhook: stayhookscommand.NewCreateWebhookCommand(service),
		UpdateWebhook: stayhookscommand.NewUpdateWebhookCommand(service),
		RotateSecret:  stayhookscommand.NewRotateSecretCommand(service),
		DeleteWebhook: stayhookscommand.NewDeleteWebhookCommand(service),
		InvokeWebhook: stayhookscommand.NewInvokeWebhookCommand(service),
		SendMessage:   stayhookscommand.NewSendMessageCommand(service),
		SendEmbed:     stayhookscommand.NewSendEmbedCommand(service),
		SendPoll:      stayhookscommand.NewSendPollCommand(service),
		SendImage:     stayhookscommand.NewSendImageCommand(service),
	}
	facade.queries = Queries{
		ListWebhooks:        stayhooksquery.NewListWebhooksQuery(service),
		GetPermittedActions: stayhooksquery.NewGetPermittedActionsQuery(service),
	}
	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}

// Package service define o sink de notificações dos fluxos de estágio.
// A entrega real (e-mail/push) ainda não existe — o default só loga, mas
// todas as transições já chamam o hook.
package service

import (
	"log"

	"github.com/google/uuid"
)

// Tipos de evento notificáveis.
const (
	EventDocumentApproved        = "DOCUMENT_APPROVED"
	EventDocumentRejected        = "DOCUMENT_REJECTED"
	EventInternshipApproved      = "INTERNSHIP_APPROVED"
	EventInternshipRejected      = "INTERNSHIP_REJECTED"
	EventInternshipStarted       = "INTERNSHIP_STARTED"
	EventEarlyTerminationDecided = "EARLY_TERMINATION_DECIDED"
	EventVacancyDecided          = "VACANCY_DECIDED"
)

type Notifier interface {
	Notify(userID uuid.UUID, eventKind, message string)
}

// LogNotifier é o stub padrão: registra o evento no log do servidor.
type LogNotifier struct{}

func (LogNotifier) Notify(userID uuid.UUID, eventKind, message string) {
	log.Printf("[NOTIFY] user=%s kind=%s msg=%s", userID, eventKind, message)
}

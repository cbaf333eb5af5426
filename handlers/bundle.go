package handlers

import (
	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/services/contact"
	"github.com/Omoefe-bazunu/hhaven/services/content"
	"github.com/Omoefe-bazunu/hhaven/services/hymnal"
	"github.com/Omoefe-bazunu/hhaven/services/i18n"
	"github.com/Omoefe-bazunu/hhaven/services/notice"
	"github.com/Omoefe-bazunu/hhaven/services/quiz"
	"github.com/Omoefe-bazunu/hhaven/services/storage"

	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers and their service dependencies.
type HandlerBundle struct {
	Store      store.Store
	ContentSvc content.ContentService
	NoticeSvc  notice.NoticeService
	QuizSvc    quiz.QuizService
	ContactSvc contact.ContactService
	HymnalSvc  *hymnal.Service
	I18nSvc    *i18n.Service
	StorageSvc storage.StorageService

	Logger *zap.Logger
}

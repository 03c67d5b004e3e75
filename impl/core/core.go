package core

import (
	"PlantyChat/entity"
	"PlantyChat/internal/config"
	"PlantyChat/internal/lib/sl"
	"context"
	"log/slog"
)

type CatalogService interface {
	Configured() bool
	FetchAllProducts(ctx context.Context) ([]entity.Product, error)
}

type Assistant interface {
	RankProducts(ctx context.Context, products []entity.Product, query string) ([]entity.ScoredProduct, error)
	ComposeResponse(ctx context.Context, systemPrompt string, conversation []entity.DialogMessage, userMsg string) (string, error)
}

type Core struct {
	catalog       CatalogService
	ass           Assistant
	assistantName string
	siteName      string
	store         *entity.StoreInfo
	faq           []entity.FAQEntry
	log           *slog.Logger
}

func New(conf *config.Config, log *slog.Logger) *Core {
	var store *entity.StoreInfo
	if conf.Store.Info != (entity.StoreInfo{}) {
		info := conf.Store.Info
		store = &info
	}
	return &Core{
		assistantName: conf.Store.AssistantName,
		siteName:      conf.Store.SiteName,
		store:         store,
		faq:           conf.Store.Faq,
		log:           log.With(sl.Module("core")),
	}
}

func (c *Core) SetCatalogService(catalog CatalogService) {
	c.catalog = catalog
}

func (c *Core) SetAssistant(ass Assistant) {
	c.ass = ass
}

// AssistantReady reports whether an assistant was wired in. The assistant
// is only wired when the OpenAI key is configured, so an unready core means
// a missing credential.
func (c *Core) AssistantReady() bool {
	return c.ass != nil
}

package core

import (
	"PlantyChat/entity"
	"fmt"
	"strings"
)

// BuildSystemPrompt assembles the system message: persona sentence, optional
// store metadata, optional FAQ pairs, ranked product bullets and the closing
// instruction. Pure string work, no I/O.
func BuildSystemPrompt(assistantName, siteName string, store *entity.StoreInfo, faq []entity.FAQEntry, products []entity.ScoredProduct) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are %s, the friendly AI assistant for %s.", assistantName, siteName))

	if store != nil {
		sb.WriteString("\n\nStore details:\n")
		sb.WriteString(fmt.Sprintf("Brand: %s\n", store.Brand))
		sb.WriteString(fmt.Sprintf("About: %s\n", store.About))
		sb.WriteString(fmt.Sprintf("Mission: %s\n", store.Mission))
		sb.WriteString(fmt.Sprintf("Shipping: %s\n", store.Shipping))
		sb.WriteString(fmt.Sprintf("Payment methods: %s\n", store.Payment))
		sb.WriteString(fmt.Sprintf("Return policy: %s\n", store.Returns))
		sb.WriteString(fmt.Sprintf("Contact: %s\n", store.Contact))
	}

	if len(faq) > 0 {
		sb.WriteString("\nFrequently asked questions:\n")
		for _, f := range faq {
			sb.WriteString(fmt.Sprintf("Q: %s / A: %s\n", f.Question, f.Answer))
		}
	}

	if len(products) > 0 {
		sb.WriteString("\nMention these products if relevant:\n")
		for _, p := range products {
			sb.WriteString(fmt.Sprintf("- %s: $%s (View: %s)\n", p.Title, p.Price, p.URL))
		}
	}

	sb.WriteString("\nAlways be friendly and helpful. If unsure, suggest browsing the store.")

	return sb.String()
}

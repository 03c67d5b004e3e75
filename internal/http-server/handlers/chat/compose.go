package chat

import (
	"PlantyChat/entity"
	"PlantyChat/internal/lib/api/response"
	"PlantyChat/internal/lib/sl"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

func Compose(log *slog.Logger, handler Core) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chat")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Message is required"))
			return
		}

		req.Message = strings.TrimSpace(req.Message)
		if err := validate.Struct(req); err != nil {
			logger.Error("no message provided")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Message is required"))
			return
		}

		if !handler.AssistantReady() {
			logger.Error("openai api key missing")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("OpenAI API key missing!"))
			return
		}

		logger = logger.With(slog.String("message", req.Message))

		reply, err := handler.ComposeReply(r.Context(), req)
		if err != nil {
			logger.Error("compose reply", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		logger.Debug("compose reply")

		render.JSON(w, r, entity.ChatReply{Reply: reply})
	}
}

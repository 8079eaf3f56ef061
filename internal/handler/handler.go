package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"payroll-engine/internal/engine"
	"payroll-engine/internal/model"
	"payroll-engine/internal/payroll"
)

const serviceName = "payroll-engine"

type Handler struct {
	engine *engine.Engine
	tables payroll.Tables
	logger *zap.Logger
}

func New(eng *engine.Engine, tables payroll.Tables, logger *zap.Logger) *Handler {
	return &Handler{engine: eng, tables: tables, logger: logger}
}

// Handle routes requests; it is the server's fasthttp.RequestHandler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	switch string(ctx.Path()) {
	case "/calculate":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			break
		}
		h.handleCalculation(ctx)
	case "/tables":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			break
		}
		writeJSON(ctx, fasthttp.StatusOK, h.tables)
	case "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{
			"status":  "healthy",
			"service": serviceName,
		})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	fields := []zap.Field{
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	}
	if id, ok := ctx.UserValue("calculation_id").(string); ok {
		fields = append(fields, zap.String("calculation_id", id))
	}
	h.logger.Info("request handled", fields...)
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(&req)
	ctx.SetUserValue("calculation_id", resp.CalculationMetadata.CalculationID)

	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		h.logger.Debug("calculation rejected",
			zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
			zap.Any("messages", resp.CalculationResult.Messages),
		)
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

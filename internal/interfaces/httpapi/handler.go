package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/hitting-tracker/internal/platform/logging"
	"github.com/riskibarqy/hitting-tracker/internal/usecase"
)

// maxRequestBody caps JSON payloads. A full outing with pitch logs stays far below it.
const maxRequestBody = 1 << 20

type Handler struct {
	playerService *usecase.PlayerService
	outingService *usecase.OutingService
	statsService  *usecase.StatsService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	outingService *usecase.OutingService,
	statsService *usecase.StatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		outingService: outingService,
		statsService:  statsService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a strict JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s: %q", usecase.ErrInvalidInput, key, raw)
	}
	return v, nil
}

func statsFilterFromQuery(r *http.Request) usecase.StatsFilter {
	return usecase.StatsFilter{Type: outingType(r.URL.Query().Get("type"))}
}

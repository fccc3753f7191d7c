package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redpen-dev/redpen/internal/api"
	"github.com/redpen-dev/redpen/internal/corrector"
	"github.com/redpen-dev/redpen/internal/svcctx"
)

// CorrectRequest is the request body for a correction.
type CorrectRequest struct {
	Text string `json:"text"`
}

// CorrectEndpoint handles POST /api/correct.
type CorrectEndpoint struct{}

func (e *CorrectEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/correct", e.handler
}

func (e *CorrectEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req CorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svc := svcctx.CorrectorFrom(r.Context())
	if svc == nil {
		writeError(w, http.StatusServiceUnavailable, "corrector not initialized")
		return
	}

	result, err := svc.Correct(r.Context(), req.Text)
	if err != nil {
		var ve *corrector.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Reason)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (e *CorrectEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "correct <text>",
		Short: "Correct text via the running server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var result corrector.Result
			req := CorrectRequest{Text: strings.Join(args, " ")}
			if err := client.Post(cmd.Context(), "/api/correct", req, &result); err != nil {
				return err
			}
			return api.Output(result)
		},
	}
}

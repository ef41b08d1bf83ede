package ui

import (
	"net/http"

	"launchdash/domain/chart"
	"launchdash/internal/callbacks"
	"launchdash/internal/controls"
	"launchdash/internal/errors"

	"github.com/gin-gonic/gin"
)

// LayoutResponse describes the page: title, controls and output regions
type LayoutResponse struct {
	Title    string               `json:"title"`
	Controls *controls.Registry   `json:"controls"`
	Outputs  []callbacks.OutputID `json:"outputs"`
	Defaults controls.State       `json:"defaults"`
	Sites    []string             `json:"sites"`
}

// CallbackRequest is sent by the page when one or more controls change
type CallbackRequest struct {
	Changed []controls.ID `json:"changed"`
	State   struct {
		Site    string    `json:"site"`
		Payload []float64 `json:"payload"`
	} `json:"state"`
}

// CallbackResponse carries the recomputed outputs keyed by output id
type CallbackResponse struct {
	Outputs map[callbacks.OutputID]chart.Spec `json:"outputs"`
}

// DashboardTitle is the heading rendered above the controls
const DashboardTitle = "SpaceX Launch Records Dashboard"

func (s *Server) handleLayout(c *gin.Context) {
	c.JSON(http.StatusOK, LayoutResponse{
		Title:    DashboardTitle,
		Controls: s.registry,
		Outputs:  s.dispatcher.Outputs(),
		Defaults: s.registry.Defaults(),
		Sites:    s.table.Sites(),
	})
}

// handleChart renders one output from query parameters site, low and high.
// low and high are only read when the output depends on the payload slider.
func (s *Server) handleChart(c *gin.Context) {
	output := callbacks.OutputID(c.Param("output"))
	site, err := s.registry.ParseSite(c.Query("site"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	payload := s.registry.Defaults().Payload
	if s.dependsOn(output, controls.PayloadSlider) {
		if payload, err = s.registry.ParsePayloadText(c.Query("low"), c.Query("high")); err != nil {
			s.writeError(c, err)
			return
		}
	}

	spec, err := s.dispatcher.Render(c.Request.Context(), output, controls.State{Site: site, Payload: payload})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, spec)
}

func (s *Server) dependsOn(output callbacks.OutputID, control controls.ID) bool {
	for _, b := range s.dispatcher.Bindings() {
		if b.Output != output {
			continue
		}
		for _, in := range b.Inputs {
			if in == control {
				return true
			}
		}
	}
	return false
}

// handleCallback recomputes the outputs triggered by the changed controls.
// An empty changed list renders every output, as on first load.
func (s *Server) handleCallback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, errors.InvalidInput("malformed callback request: "+err.Error()))
		return
	}

	state, err := s.parseState(req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	var outputs map[callbacks.OutputID]chart.Spec
	if len(req.Changed) == 0 {
		outputs, err = s.dispatcher.RenderAll(c.Request.Context(), state)
	} else {
		outputs, err = s.dispatcher.Dispatch(c.Request.Context(), req.Changed, state)
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CallbackResponse{Outputs: outputs})
}

func (s *Server) parseState(req CallbackRequest) (controls.State, error) {
	site, err := s.registry.ParseSite(req.State.Site)
	if err != nil {
		return controls.State{}, err
	}

	payload := s.registry.Defaults().Payload
	switch len(req.State.Payload) {
	case 0:
	case 2:
		if payload, err = s.registry.ParsePayload(req.State.Payload[0], req.State.Payload[1]); err != nil {
			return controls.State{}, err
		}
	default:
		return controls.State{}, errors.InvalidInput("payload must be a [low, high] pair")
	}
	return controls.State{Site: site, Payload: payload}, nil
}

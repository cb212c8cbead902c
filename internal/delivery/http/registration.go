package http

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/nutrigate/backend/config"
)

// RegistrationDocument is the capability descriptor published at the
// well-known path so discovery services can register this agent.
type RegistrationDocument struct {
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	IconURL            string              `json:"iconUrl"`
	Endpoints          []NamedEndpoint     `json:"endpoints"`
	Payment            PaymentSupport      `json:"payment"`
	TrustRegistrations []TrustRegistration `json:"trustRegistrations"`
}

// NamedEndpoint is one advertised service surface.
type NamedEndpoint struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PaymentSupport declares which payment protocol the gate in front of
// this service speaks.
type PaymentSupport struct {
	Supported bool   `json:"supported"`
	Protocol  string `json:"protocol,omitempty"`
}

// TrustRegistration is a placeholder for registry attestations; the
// published list is empty.
type TrustRegistration struct {
	Registry string `json:"registry"`
	ID       string `json:"id"`
}

// Registration serves the capability-registration document.
func (h *Handler) Registration(cfg *config.Config) gin.HandlerFunc {
	doc := RegistrationDocument{
		Name:        cfg.Registration.ServiceName,
		Description: cfg.Registration.Description,
		IconURL:     cfg.Registration.BaseURL + "/icon.png",
		Endpoints: []NamedEndpoint{
			{Name: "web", URL: cfg.Registration.BaseURL + "/api/v1/overview"},
			{Name: "agent-protocol", URL: cfg.Registration.BaseURL + "/api/v1"},
		},
		Payment: PaymentSupport{
			Supported: cfg.Payment.Enabled,
			Protocol:  cfg.Payment.Protocol,
		},
		TrustRegistrations: []TrustRegistration{},
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}

// Icon serves the service icon from disk, or 404 when no icon asset is
// deployed.
func (h *Handler) Icon(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := cfg.Registration.IconPath
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(path)
	}
}

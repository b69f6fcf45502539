package models

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartresume-backend/internal/shared/server/respond"
)

type modelResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type listResponse struct {
	Models      []modelResponse `json:"models"`
	Recommended string          `json:"recommended"`
	Fallback    bool            `json:"fallback"`
}

// RegisterRoutes mounts the model catalog endpoint.
func RegisterRoutes(rg *gin.RouterGroup, catalog *Catalog) {
	rg.GET("/models", func(c *gin.Context) {
		listing := catalog.List(c.Request.Context())
		out := make([]modelResponse, 0, len(listing.Models))
		for _, entry := range listing.Models {
			out = append(out, modelResponse{Name: entry.Name, DisplayName: entry.DisplayName})
		}
		respond.JSON(c, http.StatusOK, listResponse{
			Models:      out,
			Recommended: listing.Recommended,
			Fallback:    listing.Fallback,
		})
	})
}

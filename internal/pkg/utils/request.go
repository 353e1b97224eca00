package utils

import (
	"emr-service/internal/app/contracts"
	"emr-service/internal/app/models"
	"emr-service/internal/pkg/constvars"
	"net/http"
	"strconv"
)

// ActorFromRequest returns the authenticated actor placed on the request
// context by the actor middleware.
func ActorFromRequest(r *http.Request) models.Actor {
	actor, _ := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(models.Actor)
	return actor
}

func RequestMetadataFromRequest(r *http.Request) contracts.RequestMetadata {
	return contracts.RequestMetadata{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

func ParsePagination(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

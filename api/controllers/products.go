package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/products"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

const (
	defaultProductLimit = 50
	maxProductLimit     = 100
)

// ProductList returns the catalog, optionally filtered by ?category= and capped by ?limit=.
func ProductList(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultProductLimit, 1, maxProductLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var category enums.ProductCategory
		if raw := validators.SanitizeString(r.URL.Query().Get("category"), 64); raw != "" {
			category, err = enums.ParseProductCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown category").
					WithDetails(map[string]string{"category": "is invalid"}))
				return
			}
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filtered := make([]products.ProductDTO, 0, len(list))
		for _, p := range list {
			if category != "" && p.Category != category {
				continue
			}
			filtered = append(filtered, p)
			if len(filtered) == limit {
				break
			}
		}
		responses.WriteList(w, filtered)
	}
}

// ProductFeatured returns the home page selection.
func ProductFeatured(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}
		list, err := svc.Featured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, list)
	}
}

type productDetailResponse struct {
	products.ProductDTO
	Wishlisted bool `json:"wishlisted"`
}

// ProductDetail returns one product and whether the current user saved it.
func ProductDetail(svc products.Service, wishlistSvc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}
		productID, err := uuidParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.Get(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := productDetailResponse{ProductDTO: *product}
		if userID := middleware.UserIDFromContext(r.Context()); wishlistSvc != nil && userID != uuid.Nil {
			saved, err := wishlistSvc.Contains(r.Context(), userID, productID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			resp.Wishlisted = saved
		}
		responses.WriteSuccess(w, resp)
	}
}

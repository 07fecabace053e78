package services

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/database"
	"github.com/careerbuilder24/e-commerce-project/lib"
	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

// DefaultCommissionRate is applied to every new vendor account.
var DefaultCommissionRate = decimal.NewFromFloat(10.0)

// Stats aggregates count order_items rows, not distinct orders: an order with
// three of the vendor's items counts three times.
const (
	vendorOrderCountQuery = "SELECT count(*) FROM order_items WHERE vendor_id = ?"

	vendorRevenueQuery = `SELECT COALESCE(sum(oi.total_price), 0)
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE oi.vendor_id = ? AND o.status IN ('paid', 'shipped', 'delivered')`

	vendorPendingCountQuery = `SELECT count(*)
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 WHERE oi.vendor_id = ? AND o.status = 'pending'`
)

type VendorService struct {
	logger       *gecho.Logger
	db           *database.DB
	authService  *AuthService
	cacheService *CacheService
	emailService *EmailService
}

func NewVendorService(logger *gecho.Logger, db *database.DB, authService *AuthService, cacheService *CacheService, emailService *EmailService) *VendorService {
	return &VendorService{
		logger:       logger,
		db:           db,
		authService:  authService,
		cacheService: cacheService,
		emailService: emailService,
	}
}

// GetVendorByUserID returns the vendor account owned by the user, or nil
// when the user has none.
func (vs *VendorService) GetVendorByUserID(ctx context.Context, userID uuid.UUID) (*tables.Vendor, error) {
	vendor, err := database.Query[tables.Vendor](vs.db).Where("user_id", userID).First(ctx)
	if err != nil {
		vs.logger.Error("Failed to fetch vendor by user", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.MapPgError(err)
	}
	return vendor, nil
}

// CurrentVendor resolves the request's session to a vendor account. Both an
// anonymous request and a logged-in user without a store yield (nil, nil).
func (vs *VendorService) CurrentVendor(r *http.Request) (*tables.Vendor, error) {
	user, err := vs.authService.CurrentUser(r)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return vs.GetVendorByUserID(r.Context(), user.ID)
}

// CreateVendor registers a vendor account for the user. The existence check
// runs inside a transaction and the schema's unique constraint on user_id
// settles races, so concurrent registrations cannot produce two stores.
func (vs *VendorService) CreateVendor(ctx context.Context, user *tables.User, req *structs.CreateVendorRequest) (*tables.Vendor, error) {
	if user == nil {
		return nil, lib.ErrAuthRequired
	}

	var created *tables.Vendor
	err := vs.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := database.Query[tables.Vendor](vs.db).WithTx(tx).Where("user_id", user.ID).Exists(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		if exists {
			return lib.ErrVendorExists
		}

		vendor := &tables.Vendor{
			UserID:           user.ID,
			StoreName:        req.StoreName,
			StoreDescription: req.StoreDescription,
			ContactEmail:     req.ContactEmail,
			ContactPhone:     req.ContactPhone,
			Address:          req.Address,
			City:             req.City,
			State:            req.State,
			Country:          req.Country,
			PostalCode:       req.PostalCode,
			IsActive:         true,
			CommissionRate:   DefaultCommissionRate,
		}

		created, err = database.Query[tables.Vendor](vs.db).WithTx(tx).Insert(ctx, vendor)
		return err
	})
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			// Lost the race against a concurrent registration.
			return nil, lib.ErrVendorExists
		}
		if mappedErr == lib.ErrVendorExists {
			return nil, mappedErr
		}
		vs.logger.Error("Failed to create vendor",
			gecho.Field("error", mappedErr),
			gecho.Field("user_id", user.ID),
		)
		return nil, mappedErr
	}

	vs.logger.Info("Vendor registered",
		gecho.Field("vendor_id", created.ID),
		gecho.Field("user_id", user.ID),
		gecho.Field("store_name", created.StoreName),
	)

	go vs.emailService.SendVendorWelcome(user, created)

	return created, nil
}

// UpdateVendor applies a partial update to the user's own vendor profile.
// Returns ErrNotFound when the user has no vendor account.
func (vs *VendorService) UpdateVendor(ctx context.Context, user *tables.User, req *structs.UpdateVendorRequest) (*tables.Vendor, error) {
	if user == nil {
		return nil, lib.ErrAuthRequired
	}

	vendor, err := vs.GetVendorByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, lib.ErrNotFound
	}

	updates := filterVendorUpdates(req)
	if len(updates) == 0 {
		return vendor, nil
	}
	updates["updated_at"] = time.Now()

	_, err = database.Query[tables.Vendor](vs.db).Where("id", vendor.ID).Update(ctx, updates)
	if err != nil {
		vs.logger.Error("Failed to update vendor", gecho.Field("error", err), gecho.Field("vendor_id", vendor.ID))
		return nil, lib.MapPgError(err)
	}

	// Cached product reads carry the vendor name, drop them all.
	if err := vs.cacheService.InvalidateVendorCatalog(); err != nil {
		vs.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err), gecho.Field("vendor_id", vendor.ID))
	}

	return vs.GetVendorByUserID(ctx, user.ID)
}

// filterVendorUpdates converts the request's set pointer fields into an
// update map. Unknown columns cannot appear here, the request struct is the
// allow-list.
func filterVendorUpdates(req *structs.UpdateVendorRequest) map[string]any {
	updates := map[string]any{}

	if req.StoreName != nil {
		updates["store_name"] = *req.StoreName
	}
	if req.StoreDescription != nil {
		updates["store_description"] = *req.StoreDescription
	}
	if req.StoreLogo != nil {
		updates["store_logo"] = *req.StoreLogo
	}
	if req.StoreBanner != nil {
		updates["store_banner"] = *req.StoreBanner
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	return updates
}

// GetVendorStats computes the dashboard aggregates for a vendor. The four
// queries run concurrently; a vendor without activity gets zeroes.
func (vs *VendorService) GetVendorStats(ctx context.Context, vendor *tables.Vendor) (*structs.VendorStats, error) {
	if vendor == nil {
		return nil, lib.ErrNotFound
	}

	stats := &structs.VendorStats{
		TotalRevenue: decimal.Zero,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := database.Query[tables.Product](vs.db).Where("vendor_id", vendor.ID).Count(ctx)
		if err != nil {
			return err
		}
		stats.TotalProducts = count
		return nil
	})

	g.Go(func() error {
		return vs.db.NewRaw(vendorOrderCountQuery, vendor.ID).Scan(ctx, &stats.TotalOrders)
	})

	g.Go(func() error {
		return vs.db.NewRaw(vendorRevenueQuery, vendor.ID).Scan(ctx, &stats.TotalRevenue)
	})

	g.Go(func() error {
		return vs.db.NewRaw(vendorPendingCountQuery, vendor.ID).Scan(ctx, &stats.PendingOrders)
	})

	if err := g.Wait(); err != nil {
		vs.logger.Error("Failed to compute vendor stats", gecho.Field("error", err), gecho.Field("vendor_id", vendor.ID))
		return nil, lib.MapPgError(err)
	}

	return stats, nil
}

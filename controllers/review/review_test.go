package reviewControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
)

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil)

	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, 0.0, stats.AverageRating)
	for star := 1; star <= 5; star++ {
		assert.Equal(t, 0, stats.RatingDistribution[star])
	}
}

func TestComputeStatistics(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 5},
		{Rating: 4},
	}

	stats := ComputeStatistics(reviews)

	assert.Equal(t, 3, stats.TotalReviews)
	assert.InDelta(t, 14.0/3.0, stats.AverageRating, 1e-9)
	assert.Equal(t, 2, stats.RatingDistribution[5])
	assert.Equal(t, 1, stats.RatingDistribution[4])
	assert.Equal(t, 0, stats.RatingDistribution[3])
	assert.Equal(t, 0, stats.RatingDistribution[2])
	assert.Equal(t, 0, stats.RatingDistribution[1])
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Notification{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) (models.User, models.Order) {
	t.Helper()

	merchant := models.User{Name: "Moussa", Email: "moussa@example.com", Password: "x", Role: models.RoleMerchant}
	require.NoError(t, db.Create(&merchant).Error)
	shop := models.Shop{Name: "Moussa's Shop", OwnerID: merchant.ID}
	require.NoError(t, db.Create(&shop).Error)
	customer := models.User{Name: "Awa", Email: "awa@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&customer).Error)

	order := models.Order{
		OrderNumber:  "CMD-1700000000000",
		Total:        5000,
		Status:       status,
		CustomerName: customer.Name,
		ShopID:       shop.ID,
		CustomerID:   customer.ID,
	}
	require.NoError(t, db.Create(&order).Error)
	return customer, order
}

func newReviewRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grant := func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, models.RoleCustomer)
	}
	r.POST("/orders/:id/review", grant, SubmitReview(db))
	return r
}

func postReview(t *testing.T, r *gin.Engine, orderID string, body SubmitReviewRequest) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/review", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitReviewRequiresDeliveredOrder(t *testing.T) {
	for _, status := range []models.OrderStatus{models.OrderStatusPending, models.OrderStatusConfirmed} {
		db := openTestDB(t)
		customer, order := seedOrder(t, db, status)
		r := newReviewRouter(db, customer.ID)

		w := postReview(t, r, order.ID, SubmitReviewRequest{Rating: 5})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "not been delivered")

		var count int64
		require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestSubmitReviewRejectsSecondReview(t *testing.T) {
	db := openTestDB(t)
	customer, order := seedOrder(t, db, models.OrderStatusDelivered)
	r := newReviewRouter(db, customer.ID)

	w := postReview(t, r, order.ID, SubmitReviewRequest{Rating: 5})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postReview(t, r, order.ID, SubmitReviewRequest{Rating: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitReviewWithoutComment(t *testing.T) {
	db := openTestDB(t)
	customer, order := seedOrder(t, db, models.OrderStatusDelivered)
	r := newReviewRouter(db, customer.ID)

	w := postReview(t, r, order.ID, SubmitReviewRequest{Rating: 5})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"comment":null`)

	var stored models.Review
	require.NoError(t, db.First(&stored, "order_id = ?", order.ID).Error)
	assert.Equal(t, 5, stored.Rating)
	assert.Nil(t, stored.Comment)
}

func TestSubmitReviewOtherCustomersOrder(t *testing.T) {
	db := openTestDB(t)
	_, order := seedOrder(t, db, models.OrderStatusDelivered)

	stranger := models.User{Name: "Binta", Email: "binta@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&stranger).Error)
	r := newReviewRouter(db, stranger.ID)

	w := postReview(t, r, order.ID, SubmitReviewRequest{Rating: 5})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitReviewDuplicateInsertConflict(t *testing.T) {
	db := openTestDB(t)
	customer, order := seedOrder(t, db, models.OrderStatusDelivered)
	require.NoError(t, db.Create(&models.Review{OrderID: order.ID, Rating: 4}).Error)

	// Make the existence check miss so the duplicate lands on the order_id
	// unique index, as it does when two submissions race.
	err := db.Callback().Query().Before("gorm:query").Register("miss_review_lookup", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.Review); ok {
			tx.AddError(gorm.ErrRecordNotFound)
		}
	})
	require.NoError(t, err)

	r := newReviewRouter(db, customer.ID)
	w := postReview(t, r, order.ID, SubmitReviewRequest{Rating: 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

package reviewControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hguir/sellio/middleware"
	"github.com/hguir/sellio/models"
	"github.com/hguir/sellio/util"
)

type SubmitReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// SubmitReview attaches a rating to a delivered order. At most one review per
// order; only the order's customer may submit it.
func SubmitReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := middleware.SessionUserID(c)
		orderID := c.Param("id")

		var req SubmitReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if req.Rating < 1 || req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND customer_id = ?", orderID, customerID).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		if order.Status != models.OrderStatusDelivered {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order has not been delivered yet"})
			return
		}

		var existing models.Review
		err := db.Where("order_id = ?", orderID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A review already exists for this order"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("failed to look up existing review", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit review"})
			return
		}

		review := models.Review{
			OrderID: orderID,
			Rating:  req.Rating,
			Comment: req.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			// Concurrent submissions can both pass the lookup above; the
			// loser lands on the order_id unique index.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "A review already exists for this order"})
				return
			}
			zap.L().Error("failed to create review", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit review"})
			return
		}

		util.ReviewsCreatedTotal.Inc()
		c.JSON(http.StatusCreated, review)
	}
}

type ReviewStatistics struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// ComputeStatistics aggregates review count, mean rating and the per-star
// histogram. The average is 0 when there are no reviews.
func ComputeStatistics(reviews []models.Review) ReviewStatistics {
	stats := ReviewStatistics{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	stats.TotalReviews = len(reviews)

	var sum int
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.RatingDistribution[r.Rating]++
		}
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats
}

type reviewEntry struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	Order     struct {
		CustomerName string    `json:"customerName"`
		CreatedAt    time.Time `json:"created_at"`
	} `json:"order"`
}

// GetShopReviews is the public review listing for a shop, newest first,
// together with aggregate statistics.
func GetShopReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := c.Param("id")

		var reviews []models.Review
		if err := db.
			Joins("JOIN orders ON orders.id = reviews.order_id").
			Where("orders.shop_id = ?", shopID).
			Preload("Order").
			Order("reviews.created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews"})
			return
		}

		entries := make([]reviewEntry, 0, len(reviews))
		for _, r := range reviews {
			entry := reviewEntry{
				ID:        r.ID,
				Rating:    r.Rating,
				Comment:   r.Comment,
				CreatedAt: r.CreatedAt,
			}
			entry.Order.CustomerName = r.Order.CustomerName
			entry.Order.CreatedAt = r.Order.CreatedAt
			entries = append(entries, entry)
		}

		c.JSON(http.StatusOK, gin.H{
			"reviews":    entries,
			"statistics": ComputeStatistics(reviews),
		})
	}
}

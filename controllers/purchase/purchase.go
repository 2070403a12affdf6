package purchaseController

import (
	"math"
	"strconv"
	"time"

	"simplifygold/database"
	"simplifygold/models"
	"simplifygold/utils"
	purchaseValidator "simplifygold/validators/purchase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GoldPricePerGram is the fixed conversion price in INR. Not fetched from
// any live market source.
const GoldPricePerGram = 5500.0

// ComputeGoldGrams converts a rupee amount into gold grams at the fixed
// price, rounded to 6 decimal places
func ComputeGoldGrams(amount float64) float64 {
	return math.Round(amount/GoldPricePerGram*1e6) / 1e6
}

// HandlePurchase records a simulated digital gold purchase and updates the
// user's running totals. Both writes happen in one database transaction, so
// a failed aggregate update cannot leave an orphan purchase row.
func HandlePurchase(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPurchase").(*purchaseValidator.PurchaseRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both userId and amount are required",
		})
	}

	goldGrams := ComputeGoldGrams(reqData.Amount)
	transactionId := utils.GenerateTransactionID()

	purchase := models.Purchase{
		UserID:           reqData.UserID,
		Amount:           reqData.Amount,
		GoldGrams:        goldGrams,
		TransactionID:    transactionId,
		GoldPricePerGram: GoldPricePerGram,
		Status:           models.PurchaseStatusSuccess,
	}

	db := database.Database.Db
	tx := db.Begin()

	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		return purchaseFailedResponse(c, err)
	}

	// Upsert the user aggregate and increment its running totals
	user := models.User{UserID: reqData.UserID}
	if err := tx.Where(models.User{UserID: reqData.UserID}).
		Attrs(models.User{Name: "Anonymous User"}).
		FirstOrCreate(&user).Error; err != nil {
		tx.Rollback()
		return purchaseFailedResponse(c, err)
	}

	if err := tx.Model(&user).Updates(map[string]interface{}{
		"total_investment": gorm.Expr("total_investment + ?", reqData.Amount),
		"total_gold_grams": gorm.Expr("total_gold_grams + ?", goldGrams),
	}).Error; err != nil {
		tx.Rollback()
		return purchaseFailedResponse(c, err)
	}

	if err := tx.Commit().Error; err != nil {
		return purchaseFailedResponse(c, err)
	}

	// Send the receipt asynchronously; purchases never wait on SMTP
	if user.Email != "" {
		go utils.SendPurchaseReceiptEmail(user.Email, user.Name, transactionId, reqData.Amount, goldGrams)
	}

	return c.JSON(fiber.Map{
		"status":           "success",
		"message":          "₹" + formatNumber(reqData.Amount) + " digital gold purchase completed successfully!",
		"transactionId":    transactionId,
		"userId":           reqData.UserID,
		"goldGrams":        formatNumber(goldGrams) + "g",
		"goldPricePerGram": "₹" + formatNumber(GoldPricePerGram),
		"purchaseDate":     time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	})
}

// GetPurchaseHistory returns all purchases and the aggregate totals for a
// user. Unknown users get a zero-valued stub instead of a 404.
func GetPurchaseHistory(c *fiber.Ctx) error {
	userId := c.Params("userId")
	if userId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	db := database.Database.Db

	purchases := []models.Purchase{}
	if err := db.Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch purchase history",
			"details": err.Error(),
		})
	}

	var userPayload interface{}
	var user models.User
	if err := db.Where("user_id = ?", userId).First(&user).Error; err != nil {
		userPayload = fiber.Map{
			"userId":          userId,
			"totalInvestment": 0,
			"totalGoldGrams":  0,
		}
	} else {
		userPayload = user
	}

	return c.JSON(fiber.Map{
		"user":           userPayload,
		"purchases":      purchases,
		"totalPurchases": len(purchases),
	})
}

func purchaseFailedResponse(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Failed to complete purchase. Please try again.",
		"details": err.Error(),
	})
}

// formatNumber prints a float the shortest way, so whole rupee amounts
// render without a decimal point
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

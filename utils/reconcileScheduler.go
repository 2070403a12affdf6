package utils

import (
	"log"
	"strconv"
	"time"

	"simplifygold/database"
	"simplifygold/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcilePendingPurchases marks purchases still pending from a previous
// day as failed. The purchase handler itself only writes success rows;
// pending rows come from out-of-band inserts (support scripts, imports),
// and this sweep is what ages them out. Purchases are otherwise immutable.
func ReconcilePendingPurchases() {
	cutoff := now.BeginningOfDay()

	result := database.Database.Db.Model(&models.Purchase{}).
		Where("status = ? AND created_at < ?", models.PurchaseStatusPending, cutoff).
		Update("status", models.PurchaseStatusFailed)

	if result.Error != nil {
		logScheduler("Error reconciling pending purchases: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler("Marked stale pending purchases as failed: " + strconv.FormatInt(result.RowsAffected, 10))
	}
}

// StartReconcileScheduler runs the pending-purchase sweep every day shortly
// after midnight IST
func StartReconcileScheduler() *cron.Cron {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Failed to load IST timezone, using local: %v", err)
		loc = time.Local
	}

	c := cron.New(cron.WithLocation(loc))

	if _, err := c.AddFunc("15 0 * * *", ReconcilePendingPurchases); err != nil {
		log.Printf("Failed to schedule purchase reconciler: %v", err)
		return c
	}

	c.Start()
	logScheduler("Pending-purchase reconciler scheduled (daily 00:15 IST)")
	return c
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pratheepg2026-commits/crm-v2/internal/model"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Metrics is the dashboard read model for one calendar month.
type Metrics struct {
	Profit              decimal.Decimal `json:"profit"`
	SalesBoxes          float64         `json:"sales_boxes"`
	ActiveSubscriptions int64           `json:"active_subscriptions"`
	MonthlyExpenses     decimal.Decimal `json:"monthly_expenses"`
	TotalExpenses       decimal.Decimal `json:"total_expenses"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	SalesCount          int64           `json:"sales_count"`
	ExpenseCount        int64           `json:"expense_count"`
	PeriodStart         time.Time       `json:"period_start"`
}

type AnalyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db, now: time.Now}
}

// MonthStart is midnight on the first day of t's month, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Dashboard computes the metrics for the month containing the current time.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID uint) (*Metrics, error) {
	return s.DashboardAt(ctx, userID, s.now())
}

// DashboardAt sums the sales and expenses dated from the start of asOf's month
// onward. Nothing is cached.
func (s *AnalyticsService) DashboardAt(ctx context.Context, userID uint, asOf time.Time) (*Metrics, error) {
	defer prometheus.TrackDBOperation("aggregate")()

	start := MonthStart(asOf)
	since := start.UTC()
	db := s.db.WithContext(ctx)

	var sales []model.Sale
	if err := db.Select("total", "quantity").
		Where("user_id = ? AND date >= ?", userID, since).Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}

	var expenses []model.Expense
	if err := db.Select("amount").
		Where("user_id = ? AND date >= ?", userID, since).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	var active int64
	if err := db.Model(&model.Subscription{}).
		Where("user_id = ? AND status = ?", userID, model.StatusActive).Count(&active).Error; err != nil {
		return nil, fmt.Errorf("count subscriptions: %w", err)
	}

	m := &Metrics{
		TotalRevenue:        decimal.Zero,
		TotalExpenses:       decimal.Zero,
		ActiveSubscriptions: active,
		SalesCount:          int64(len(sales)),
		ExpenseCount:        int64(len(expenses)),
		PeriodStart:         start,
	}
	for _, sale := range sales {
		m.TotalRevenue = m.TotalRevenue.Add(sale.Total)
		if sale.Quantity != nil {
			m.SalesBoxes += *sale.Quantity
		}
	}
	for _, e := range expenses {
		m.TotalExpenses = m.TotalExpenses.Add(e.Amount)
	}
	m.MonthlyExpenses = m.TotalExpenses
	m.Profit = m.TotalRevenue.Sub(m.TotalExpenses)

	return m, nil
}

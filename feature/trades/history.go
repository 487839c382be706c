package trades

import (
	"errors"
	"sort"
	"time"
)

// ErrNoDatabase is returned by history queries when no database is configured.
var ErrNoDatabase = errors.New("trade history database not configured")

// TradeLog mirrors one row of the shopkeeper_trades table, appended by the
// game-side companion plugin whenever a player completes a trade. This
// service only ever reads it.
type TradeLog struct {
	ID               uint      `gorm:"column:id;primaryKey" json:"id"`
	Timestamp        time.Time `gorm:"column:timestamp" json:"timestamp"`
	ShopUUID         string    `gorm:"column:shop_uuid" json:"shop_uuid"`
	ShopOwnerUUID    string    `gorm:"column:shop_owner_uuid" json:"shop_owner_uuid"`
	ShopOwnerName    string    `gorm:"column:shop_owner_name" json:"shop_owner_name"`
	PlayerUUID       string    `gorm:"column:player_uuid" json:"player_uuid"`
	PlayerName       string    `gorm:"column:player_name" json:"player_name"`
	ResultItemType   string    `gorm:"column:result_item_type" json:"result_item_type"`
	ResultItemAmount int       `gorm:"column:result_item_amount" json:"result_item_amount"`
	TradeCount       int       `gorm:"column:trade_count" json:"trade_count"`
}

// TableName implements the gorm table naming override.
func (TradeLog) TableName() string { return "shopkeeper_trades" }

// TradeStats aggregates a player's trading activity.
type TradeStats struct {
	TotalTrades      int    `json:"total_trades"`
	TotalItemsSold   int    `json:"total_items_sold"`
	TotalItemsBought int    `json:"total_items_bought"`
	MostSoldItem     string `json:"most_sold_item,omitempty"`
	MostSoldCount    int    `json:"most_sold_count"`
	UniqueCustomers  int64  `json:"unique_customers"`
}

// TopSeller is one row of the seller leaderboard.
type TopSeller struct {
	PlayerUUID  string `gorm:"column:shop_owner_uuid" json:"player_uuid"`
	PlayerName  string `gorm:"column:shop_owner_name" json:"player_name"`
	TotalSales  int64  `gorm:"column:total_sales" json:"total_sales"`
	UniqueItems int64  `gorm:"column:unique_items" json:"unique_items"`
}

// RecentTrades returns the most recent trades across all shops.
func (s *Service) RecentTrades(limit int) ([]TradeLog, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var logs []TradeLog
	err := s.db.Order("timestamp DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// PlayerTrades returns a player's trades as buyer, as seller, or both,
// merged and sorted by recency.
func (s *Service) PlayerTrades(playerUUID string, asBuyer, asSeller bool, limit int) ([]TradeLog, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var logs []TradeLog

	if asBuyer {
		var bought []TradeLog
		if err := s.db.Where("player_uuid = ?", playerUUID).
			Order("timestamp DESC").Limit(limit).Find(&bought).Error; err != nil {
			return nil, err
		}
		logs = append(logs, bought...)
	}

	if asSeller {
		var sold []TradeLog
		if err := s.db.Where("shop_owner_uuid = ?", playerUUID).
			Order("timestamp DESC").Limit(limit).Find(&sold).Error; err != nil {
			return nil, err
		}
		logs = append(logs, sold...)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

// PlayerTradeStats aggregates sales and purchases for one player.
func (s *Service) PlayerTradeStats(playerUUID string) (*TradeStats, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var sales []TradeLog
	if err := s.db.Where("shop_owner_uuid = ?", playerUUID).Find(&sales).Error; err != nil {
		return nil, err
	}

	var purchases []TradeLog
	if err := s.db.Where("player_uuid = ?", playerUUID).Find(&purchases).Error; err != nil {
		return nil, err
	}

	stats := &TradeStats{TotalTrades: len(sales) + len(purchases)}

	itemCounts := make(map[string]int)
	for _, trade := range sales {
		count := trade.ResultItemAmount * trade.TradeCount
		stats.TotalItemsSold += count
		itemCounts[trade.ResultItemType] += count
	}
	for _, trade := range purchases {
		stats.TotalItemsBought += trade.ResultItemAmount * trade.TradeCount
	}

	for item, count := range itemCounts {
		if count > stats.MostSoldCount {
			stats.MostSoldItem = item
			stats.MostSoldCount = count
		}
	}

	err := s.db.Model(&TradeLog{}).
		Where("shop_owner_uuid = ?", playerUUID).
		Distinct("player_uuid").
		Count(&stats.UniqueCustomers).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// TopSellers returns shop owners ranked by total completed sales.
func (s *Service) TopSellers(limit int) ([]TopSeller, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var sellers []TopSeller
	err := s.db.Model(&TradeLog{}).
		Select("shop_owner_uuid, shop_owner_name, COUNT(*) AS total_sales, COUNT(DISTINCT result_item_type) AS unique_items").
		Where("shop_owner_uuid IS NOT NULL").
		Group("shop_owner_uuid, shop_owner_name").
		Order("total_sales DESC").
		Limit(limit).
		Scan(&sellers).Error
	return sellers, err
}

// ShopTrades returns the trade log of a single shop.
func (s *Service) ShopTrades(shopUUID string, limit int) ([]TradeLog, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var logs []TradeLog
	err := s.db.Where("shop_uuid = ?", shopUUID).
		Order("timestamp DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

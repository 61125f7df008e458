package service

import "github.com/brewnext/internal/constants"

// orderStatusRank 正向流转的阶段序：processing → shipped → delivered
var orderStatusRank = map[string]int{
	constants.OrderStatusProcessing: 1,
	constants.OrderStatusShipped:    2,
	constants.OrderStatusDelivered:  3,
}

// IsValidOrderStatus 判断是否为已知订单状态
func IsValidOrderStatus(status string) bool {
	if status == constants.OrderStatusCancelled {
		return true
	}
	_, ok := orderStatusRank[status]
	return ok
}

// CanTransitOrderStatus 判断状态流转是否合法：
// 只允许沿阶段序前进（可跳级），cancelled 是旁路出口，
// 已送达或已取消的订单不能再取消，任何状态都不能回退。
func CanTransitOrderStatus(from, to string) bool {
	if !IsValidOrderStatus(from) || !IsValidOrderStatus(to) {
		return false
	}
	if from == constants.OrderStatusCancelled {
		return false
	}
	if to == constants.OrderStatusCancelled {
		return from != constants.OrderStatusDelivered
	}
	return orderStatusRank[to] > orderStatusRank[from]
}

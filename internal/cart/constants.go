package cart

// Field messages
const (
	MsgUserIDRequired    = "User ID is required"
	MsgProductIDRequired = "Product ID is required"
	MsgQuantityPositive  = "Quantity must be at least 1"
)

// Log messages
const (
	LogMsgItemAdded   = "Cart item added"
	LogMsgItemUpdated = "Cart item quantity updated"
	LogMsgItemRemoved = "Cart item removed"
	LogMsgCartCleared = "Cart cleared"
)

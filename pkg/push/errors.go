package push

import "errors"

var (
	ErrInvalidNotification = errors.New("invalid push notification")
	ErrFailedToSendPush    = errors.New("failed to send push notification")
	ErrInvalidConfig       = errors.New("invalid push sender configuration")
)

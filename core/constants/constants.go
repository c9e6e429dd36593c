package constants

import "time"

const (
	DefaultRequestTimeout = 10 * time.Second

	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"

	TokenExpiryMinutes = 60

	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeyPresence       = "presence:"
	RedisKeyTyping         = "typing:"

	PresenceTTL = 30 * time.Second
	TypingTTL   = 5 * time.Second

	// Pending invitations older than this are swept to expired.
	InvitationExpiryDays = 14

	CoupleGroupMaxMembers = 2

	DefaultPageSize = 20
	MaxPageSize     = 100
)

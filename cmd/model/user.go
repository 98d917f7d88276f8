package model

// User rows are owned by the account service; this module only reads the
// profile fields it joins onto videos, comments and subscriptions.
type User struct {
	UserId    int64  `json:"user_id" gorm:"column:user_id;primaryKey"`
	UserName  string `json:"user_name" gorm:"column:user_name"`
	FullName  string `json:"full_name" gorm:"column:full_name"`
	AvatarUrl string `json:"avatar_url" gorm:"column:avatar_url"`
	CoverUrl  string `json:"cover_url" gorm:"column:cover_url"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
}

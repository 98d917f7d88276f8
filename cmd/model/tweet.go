package model

type Tweet struct {
	TweetId   int64  `json:"tweet_id" gorm:"column:tweet_id;primaryKey"`
	UserId    int64  `json:"user_id" gorm:"column:user_id;index"`
	Content   string `json:"content" gorm:"column:content"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at"`
}

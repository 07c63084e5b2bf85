package models

// CareerGoal tracks staged progress toward a professional milestone.
// Its stage history lives in StageHistory rows; deleting a goal removes
// them in the same transaction.
type CareerGoal struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	UserEmail        string `gorm:"index;not null" json:"user_email"`
	Title            string `gorm:"not null" json:"title"`
	Description      string `json:"description"`
	Progress         int    `gorm:"default:0" json:"progress"`
	GoalType         string `gorm:"default:general" json:"goal_type"`
	TargetDate       string `json:"target_date"`
	TotalStages      int    `gorm:"default:5" json:"total_stages"`
	CurrentStage     int    `gorm:"default:0" json:"current_stage"`
	StartDate        string `json:"start_date"`
	StageDescription string `json:"stage_description"`
	CreatedDate      string `json:"created_date"`
}

// StageHistory is an append-only log of stage transitions for a goal.
type StageHistory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	GoalID      uint   `gorm:"index;not null" json:"goal_id"`
	Stage       int    `json:"stage"`
	Description string `json:"description"`
	UpdatedDate string `json:"updated_date"`
}

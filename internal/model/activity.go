package model

// Activity 课外活动 — 以活动名称为主键
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DescriptionZh   string   `json:"description_zh,omitempty"`
	Schedule        string   `json:"schedule"`
	ScheduleZh      string   `json:"schedule_zh,omitempty"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant 判断邮箱是否已在名单中
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull 名单人数是否已达上限
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// SpotsLeft 剩余名额，不小于 0
func (a *Activity) SpotsLeft() int {
	if n := a.MaxParticipants - len(a.Participants); n > 0 {
		return n
	}
	return 0
}

// Clone 深拷贝，名单切片不与原对象共享
func (a *Activity) Clone() Activity {
	c := *a
	c.Participants = append([]string(nil), a.Participants...)
	return c
}

// SeedActivities 返回进程启动时载入的活动数据，每次调用都是新副本
func SeedActivities() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			DescriptionZh:   "学习象棋策略并参加象棋比赛",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			ScheduleZh:      "周五，下午3:30 - 5:00",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			DescriptionZh:   "学习编程基础知识并开发软件项目",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			ScheduleZh:      "周二和周四，下午3:30 - 4:30",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			DescriptionZh:   "体育教育和运动活动",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			ScheduleZh:      "周一、周三、周五，下午2:00 - 3:00",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

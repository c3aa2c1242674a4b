// Package i18n 提供面向用户文本的多语言消息表。
//
// 支持的语言是封闭集合（英文、中文），任何无法识别的语言代码都回退到英文；
// 某语言下不存在的消息键原样返回键名，便于发现缺失翻译。
package i18n

import "strings"

// Lang 支持的语言
type Lang string

const (
	EN Lang = "en"
	ZH Lang = "zh"
)

// Default 默认语言
const Default = EN

// ParseLang 将请求中的语言代码解析为支持的语言，无法识别时回退英文
func ParseLang(code string) Lang {
	switch Lang(code) {
	case ZH:
		return ZH
	default:
		return EN
	}
}

// Key 消息键
type Key string

const (
	// ===== 报名结果 =====
	SignupSuccess          Key = "signup_success"
	StudentAlreadySignedUp Key = "student_already_signed_up"
	ActivityNotFound       Key = "activity_not_found"
	ActivityFull           Key = "activity_full"

	// ===== 通用错误 =====
	InvalidRequest  Key = "invalid_request"
	TooManyRequests Key = "too_many_requests"

	// ===== 名单导出 =====
	ExportSheet        Key = "export_sheet"
	ExportTitle        Key = "export_title"
	ExportActivity     Key = "export_activity"
	ExportDescription  Key = "export_description"
	ExportSchedule     Key = "export_schedule"
	ExportCapacity     Key = "export_capacity"
	ExportEnrolled     Key = "export_enrolled"
	ExportSpotsLeft    Key = "export_spots_left"
	ExportParticipants Key = "export_participants"
	ExportFilename     Key = "export_filename"
)

var catalogs = map[Lang]map[Key]string{
	EN: enMessages,
	ZH: zhMessages,
}

var enMessages = map[Key]string{
	SignupSuccess:          "Signed up {email} for {activity_name}",
	StudentAlreadySignedUp: "Student already signed up",
	ActivityNotFound:       "Activity not found",
	ActivityFull:           "Activity is full",
	InvalidRequest:         "Invalid request: {field} is required",
	TooManyRequests:        "Too many requests, please try again later",

	ExportSheet:        "Rosters",
	ExportTitle:        "Mergington High School - Extracurricular Activities",
	ExportActivity:     "Activity",
	ExportDescription:  "Description",
	ExportSchedule:     "Schedule",
	ExportCapacity:     "Max Participants",
	ExportEnrolled:     "Enrolled",
	ExportSpotsLeft:    "Spots Left",
	ExportParticipants: "Participants",
	ExportFilename:     "activity_rosters.xlsx",
}

var zhMessages = map[Key]string{
	SignupSuccess:          "已为 {email} 成功报名 {activity_name}",
	StudentAlreadySignedUp: "学生已经报名",
	ActivityNotFound:       "未找到活动",
	ActivityFull:           "活动名额已满",
	InvalidRequest:         "请求参数错误：{field} 不能为空",
	TooManyRequests:        "请求过于频繁，请稍后再试",

	ExportSheet:        "报名名单",
	ExportTitle:        "默里顿高中 - 课外活动",
	ExportActivity:     "活动",
	ExportDescription:  "简介",
	ExportSchedule:     "时间安排",
	ExportCapacity:     "人数上限",
	ExportEnrolled:     "已报名",
	ExportSpotsLeft:    "剩余名额",
	ExportParticipants: "参与者",
	ExportFilename:     "课外活动报名名单.xlsx",
}

// T 查找 lang 下 key 对应的模板并填充命名占位符
func T(lang Lang, key Key, args map[string]string) string {
	cat, ok := catalogs[lang]
	if !ok {
		cat = catalogs[Default]
	}
	tmpl, ok := cat[key]
	if !ok {
		return string(key)
	}
	return Format(tmpl, args)
}

// Format 将模板中的 {name} 占位符替换为 args 中的值
// 未提供值的占位符保持原样；替换结果不会被再次展开
func Format(tmpl string, args map[string]string) string {
	if len(args) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

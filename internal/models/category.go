package models

// RecommendedCategories is the suggested label set for the Finance view.
// Categories are free-form; these are offered by the dashboard but never
// enforced on incoming transactions.
var RecommendedCategories = []string{
	"Quỹ thành viên",
	"Tài trợ",
	"Biểu diễn",
	"Liên hoan",
	"Cơ sở vật chất",
	"Trang phục",
	"Nhạc cụ",
	"In ấn tài liệu",
	"Di chuyển",
	"Khác",
}

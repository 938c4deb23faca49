package i18n

// messages is the vi/en catalog keyed by message identifier.
var messages = map[string]map[string]string{
	"error.bad_request": {
		LocaleVI: "Dữ liệu không hợp lệ",
		LocaleEN: "Invalid request data",
	},
	"error.internal": {
		LocaleVI: "Lỗi hệ thống, vui lòng thử lại sau",
		LocaleEN: "Internal error, please try again later",
	},
	"error.post_not_found": {
		LocaleVI: "Không tìm thấy bài viết",
		LocaleEN: "Blog post not found",
	},
	"error.post_fetch_failed": {
		LocaleVI: "Không thể tải bài viết",
		LocaleEN: "Failed to fetch blog posts",
	},
	"error.post_create_failed": {
		LocaleVI: "Không thể tạo bài viết",
		LocaleEN: "Failed to create blog post",
	},
	"error.post_update_failed": {
		LocaleVI: "Không thể cập nhật bài viết",
		LocaleEN: "Failed to update blog post",
	},
	"error.post_delete_failed": {
		LocaleVI: "Không thể xóa bài viết",
		LocaleEN: "Failed to delete blog post",
	},
	"error.post_deleted": {
		LocaleVI: "Bài viết đã được xóa thành công",
		LocaleEN: "Blog post deleted successfully",
	},
	"error.slug_exists": {
		LocaleVI: "Slug đã tồn tại",
		LocaleEN: "Slug already exists",
	},
	"error.status_invalid": {
		LocaleVI: "Trạng thái bài viết không hợp lệ",
		LocaleEN: "Invalid post status",
	},
	"error.tag_not_found": {
		LocaleVI: "Không tìm thấy tag",
		LocaleEN: "Tag not found",
	},
	"error.tag_exists": {
		LocaleVI: "Tag đã tồn tại",
		LocaleEN: "Tag already exists",
	},
	"error.tag_fetch_failed": {
		LocaleVI: "Không thể tải danh sách tag",
		LocaleEN: "Failed to fetch tags",
	},
	"error.tag_create_failed": {
		LocaleVI: "Không thể tạo tag",
		LocaleEN: "Failed to create tag",
	},
	"error.tag_delete_failed": {
		LocaleVI: "Không thể xóa tag",
		LocaleEN: "Failed to delete tag",
	},
	"error.tag_deleted": {
		LocaleVI: "Tag đã được xóa thành công",
		LocaleEN: "Tag deleted successfully",
	},
	"error.skill_not_found": {
		LocaleVI: "Không tìm thấy kỹ năng",
		LocaleEN: "Skill not found",
	},
	"error.skill_fetch_failed": {
		LocaleVI: "Không thể tải danh sách kỹ năng",
		LocaleEN: "Failed to fetch skills",
	},
	"error.skill_create_failed": {
		LocaleVI: "Không thể tạo kỹ năng",
		LocaleEN: "Failed to create skill",
	},
	"error.skill_update_failed": {
		LocaleVI: "Không thể cập nhật kỹ năng",
		LocaleEN: "Failed to update skill",
	},
	"error.skill_delete_failed": {
		LocaleVI: "Không thể xóa kỹ năng",
		LocaleEN: "Failed to delete skill",
	},
	"error.skill_deleted": {
		LocaleVI: "Kỹ năng đã được xóa thành công",
		LocaleEN: "Skill deleted successfully",
	},
	"error.rate_limited": {
		LocaleVI: "Thao tác quá nhanh, vui lòng thử lại sau %d giây",
		LocaleEN: "Too many requests, try again in %d seconds",
	},
	"error.rate_limit_unavailable": {
		LocaleVI: "Không thể kiểm tra giới hạn truy cập",
		LocaleEN: "Rate limit check unavailable",
	},
}

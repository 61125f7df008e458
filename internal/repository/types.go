package repository

// ProductQuery 商品目录查询条件
type ProductQuery struct {
	Search   string // 名称/描述子串匹配（不区分大小写）
	Category string // 精确分类，all 或空表示不过滤
	Sort     string // price-asc / price-desc / rating-desc / name-asc
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}

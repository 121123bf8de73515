package service

// Policy 采购单 / 维护工作 / 故障的修改与删除授权规则
type Policy struct {
	enforceOwnership bool
}

// NewPolicy 创建授权规则，enforceOwnership 为 false 时任意已认证用户均可修改
func NewPolicy(enforceOwnership bool) Policy {
	return Policy{enforceOwnership: enforceOwnership}
}

// Authorize 判断 actorID 能否修改 ownerID 名下的记录
func (p Policy) Authorize(actorID, ownerID int64) error {
	if !p.enforceOwnership || actorID == ownerID {
		return nil
	}
	return ErrNotOwner
}

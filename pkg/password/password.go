package password

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxBytes bcrypt 只接受不超过 72 字节的明文
const MaxBytes = 72

// Hasher bcrypt 密码哈希器
type Hasher struct {
	cost int
}

// NewHasher 创建哈希器；cost 非法时回退为 bcrypt.DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash 生成加盐哈希
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify 校验明文与哈希是否匹配
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

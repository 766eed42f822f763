package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 转义 LIKE/ILIKE 通配符，使用户输入按字面匹配
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

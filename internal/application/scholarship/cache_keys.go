package scholarship

import "fmt"

func cacheKeyDetails(id string) string {
	return fmt.Sprintf("scholarship:%s", id)
}

package utils

import "strconv"

// Transfer coerces a JWT payload value into an int64 user id. JSON numbers
// arrive as float64, some token issuers store the id as a string.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	res, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, err
	}
	return res, nil
}

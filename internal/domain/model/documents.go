package model

import "time"

// ドキュメントストアから読み出した生のフィールドマップを型付きモデルへ変換する。
// Firestoreは数値をint64/float64、PostgRESTはfloat64で返すため、
// 数値の取り出しはここで型ゆらぎを吸収する

// CourseFromDocument 生ドキュメントを Course に変換する
func CourseFromDocument(id string, data map[string]any) Course {
	return Course{
		ID:        id,
		Name:      stringField(data, "name"),
		Latitude:  numberField(data, "latitude"),
		Longitude: numberField(data, "longitude"),
		City:      stringField(data, "city"),
		State:     stringField(data, "state"),
		RegionKey: stringField(data, FieldRegionKey),
	}
}

// ProfileFromDocument 生ドキュメントを UserProfile に変換する
func ProfileFromDocument(id string, data map[string]any) UserProfile {
	return UserProfile{
		ID:          id,
		DisplayName: stringField(data, "displayName"),
		AvatarURL:   stringField(data, "avatarUrl"),
		AccountType: stringField(data, "accountType"),
		RegionKey:   stringField(data, FieldRegionKey),
	}
}

// RoundFromDocument 生ドキュメントを Round に変換する
func RoundFromDocument(id string, data map[string]any) Round {
	return Round{
		ID:          id,
		OwnerID:     stringField(data, "ownerId"),
		CourseID:    stringField(data, "courseId"),
		NetScore:    int(numberField(data, "netScore")),
		GrossScore:  int(numberField(data, "grossScore")),
		CreatedAt:   timeField(data, "createdAt"),
		RegionKey:   stringField(data, FieldRegionKey),
		IsHoleInOne: boolField(data, "isHoleInOne"),
	}
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func numberField(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func boolField(data map[string]any, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

func timeField(data map[string]any, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

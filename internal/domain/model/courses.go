package model

import "time"

// Course ゴルフコース（ラウンドの開催地）。
// ラウンドの regionKey は自前で解決せず、所属コースから継承する
type Course struct {
	ID              string    `json:"id" firestore:"-"`
	Name            string    `json:"name" firestore:"name"`
	Latitude        float64   `json:"latitude" firestore:"latitude"`
	Longitude       float64   `json:"longitude" firestore:"longitude"`
	City            string    `json:"city" firestore:"city"`
	State           string    `json:"state" firestore:"state"`
	RegionKey       string    `json:"regionKey" firestore:"regionKey"`
	RegionUpdatedAt time.Time `json:"regionUpdatedAt" firestore:"regionUpdatedAt"`
}

package store

import "errors"

// ErrNotFound 查無資料時回傳，讓 handler 能與一般資料庫錯誤區分。
var ErrNotFound = errors.New("record not found")

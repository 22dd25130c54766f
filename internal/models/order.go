package models

// PositionOrder is the depth-chart order used for position axes.
var PositionOrder = []string{
	"QB", "HB", "FB", "WR", "TE", "LT", "LG", "C", "RG", "RT",
	"LEDG", "REDG", "DT", "SAM", "MIKE", "WILL", "CB", "FS", "SS", "K", "P",
}

// GroupOrder is the presentation order of position groups.
var GroupOrder = []string{
	"QB", "RB", "WR", "TE", "OL", "DL", "EDGE", "DE", "DT", "LB", "OLB", "MLB", "DB", "CB", "S", "K", "P",
}

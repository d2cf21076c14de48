package systems

import (
	"math"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
)

// distance 返回两点距离
func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// circlesOverlap 判断两个圆是否重叠
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx, dy := x2-x1, y2-y1
	rr := r1 + r2
	return dx*dx+dy*dy < rr*rr
}

// normalize 返回单位向量，零向量返回 (0, 0)
func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// separationNormal 返回从 b 指向 a 的单位法线
// 两圆心重合时使用实体ID决定一个固定方向，保证结果可重放
func separationNormal(ax, ay, bx, by float64, a, b ecs.EntityID) (float64, float64, float64) {
	dx, dy := ax-bx, ay-by
	d := math.Hypot(dx, dy)
	if d > 0 {
		return dx / d, dy / d, d
	}
	angle := float64((uint64(a)*7919+uint64(b)*104729)%360) * math.Pi / 180
	return math.Cos(angle), math.Sin(angle), 0
}

// pushOutOfObstacle 把圆形实体推出障碍物
// 返回：是否发生了推出，以及推出法线
func pushOutOfObstacle(pos *components.PositionComponent, radius float64, obsPos *components.PositionComponent, obsRadius float64, id, obsID ecs.EntityID) (bool, float64, float64) {
	minDist := radius + obsRadius
	if !circlesOverlap(pos.X, pos.Y, radius, obsPos.X, obsPos.Y, obsRadius) {
		return false, 0, 0
	}
	nx, ny, d := separationNormal(pos.X, pos.Y, obsPos.X, obsPos.Y, id, obsID)
	push := minDist - d
	pos.X += nx * push
	pos.Y += ny * push
	return true, nx, ny
}

// slideTangent 返回与法线垂直、朝向目标方向的切线
func slideTangent(nx, ny, towardX, towardY float64) (float64, float64) {
	tx, ty := -ny, nx
	if tx*towardX+ty*towardY < 0 {
		tx, ty = -tx, -ty
	}
	return tx, ty
}

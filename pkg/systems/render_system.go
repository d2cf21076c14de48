package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// SpriteSource 按名称提供精灵图像
// 返回 nil 时渲染系统退化为基本图形
type SpriteSource interface {
	Sprite(name string) *ebiten.Image
}

var (
	colorWorldEdge     = color.RGBA{90, 90, 110, 255}
	colorObstacle      = color.RGBA{70, 60, 50, 255}
	colorDoorClosed    = color.RGBA{120, 40, 40, 255}
	colorDoorOpen      = color.RGBA{60, 200, 90, 255}
	colorChest         = color.RGBA{200, 160, 40, 255}
	colorDrop          = color.RGBA{255, 220, 60, 255}
	colorStrikeWarning = color.RGBA{255, 80, 40, 120}
	colorBlast         = color.RGBA{255, 150, 40, 160}
	colorBeam          = color.RGBA{120, 255, 160, 200}
	colorEnemyShot     = color.RGBA{255, 90, 200, 255}
	colorWallSegment   = color.RGBA{180, 120, 255, 255}
	colorPlayerShot    = color.RGBA{250, 250, 210, 255}
	colorGrenade       = color.RGBA{90, 200, 90, 255}
	colorEnemy         = color.RGBA{220, 60, 60, 255}
	colorMinion        = color.RGBA{200, 110, 110, 255}
	colorBoss          = color.RGBA{160, 30, 160, 255}
	colorDecoy         = color.RGBA{120, 170, 255, 200}
	colorPlayer        = color.RGBA{80, 160, 255, 255}
	colorShield        = color.RGBA{140, 220, 255, 200}
	colorHealthBack    = color.RGBA{40, 40, 40, 220}
	colorHealthFill    = color.RGBA{220, 50, 50, 255}
	colorText          = color.RGBA{240, 240, 240, 255}
)

// themeBackground 主题背景色
var themeBackground = map[types.Theme]color.RGBA{
	types.ThemeForest:  {28, 52, 30, 255},
	types.ThemeCrypt:   {34, 30, 42, 255},
	types.ThemeVolcano: {58, 28, 20, 255},
	types.ThemeGlacier: {30, 46, 64, 255},
	types.ThemeSwamp:   {36, 48, 32, 255},
}

// RenderSystem 以镜头为中心绘制世界
//
// 渲染顺序（从底到顶）：背景 → 障碍物/出口/宝箱 → 掉落物 → 伤害区域 → 光束 → 子弹 → 敌人 → 诱饵 → 玩家 → HUD
// 有精灵图像的实体绘制图像，否则绘制基本图形。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	sprites       SpriteSource
	face          text.Face
}

// NewRenderSystem 创建渲染系统
// sprites 可以为 nil
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, sprites SpriteSource) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		sprites:       sprites,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// WorldToScreen 世界坐标转屏幕坐标
func (s *RenderSystem) WorldToScreen(x, y float64) (float32, float32) {
	gs := s.gameState
	return float32(x - gs.CameraX + gs.ViewWidth/2), float32(y - gs.CameraY + gs.ViewHeight/2)
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	gs := s.gameState
	if bg, ok := themeBackground[gs.Theme]; ok {
		screen.Fill(bg)
	} else {
		screen.Fill(color.Black)
	}

	x0, y0 := s.WorldToScreen(0, 0)
	vector.StrokeRect(screen, x0, y0, float32(gs.WorldWidth), float32(gs.WorldHeight), 3, colorWorldEdge, false)

	s.drawStatics(screen)
	s.drawDrops(screen)
	s.drawHazards(screen)
	s.drawBeams(screen)
	s.drawProjectiles(screen)
	s.drawEnemies(screen)
	s.drawDecoy(screen)
	s.drawPlayer(screen)
	s.drawHUD(screen)
}

// drawSprite 绘制精灵图像，返回是否成功
func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID, x, y, scale float64) bool {
	if s.sprites == nil {
		return false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return false
	}
	img := s.sprites.Sprite(sprite.Name)
	if img == nil {
		return false
	}
	if scale <= 0 {
		scale = 1
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	sx, sy := s.WorldToScreen(x, y)
	op.GeoM.Translate(float64(sx), float64(sy))
	screen.DrawImage(img, op)
	return true
}

func (s *RenderSystem) drawCircleEntity(screen *ebiten.Image, id ecs.EntityID, pos *components.PositionComponent, radius, scale float64, clr color.Color) {
	if s.drawSprite(screen, id, pos.X, pos.Y, scale) {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	sx, sy := s.WorldToScreen(pos.X, pos.Y)
	vector.DrawFilledCircle(screen, sx, sy, float32(radius*scale), clr, true)
}

func (s *RenderSystem) radius(id ecs.EntityID) float64 {
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		return col.Radius
	}
	return 8
}

func (s *RenderSystem) drawStatics(screen *ebiten.Image) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawCircleEntity(screen, id, pos, s.radius(id), 1, colorObstacle)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ExitDoorComponent, *components.PositionComponent](em) {
		door, _ := ecs.GetComponent[*components.ExitDoorComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if s.drawSprite(screen, id, pos.X, pos.Y, 1) {
			continue
		}
		r := float32(s.radius(id))
		sx, sy := s.WorldToScreen(pos.X, pos.Y)
		clr := colorDoorClosed
		if door.Open {
			clr = colorDoorOpen
		}
		vector.DrawFilledRect(screen, sx-r, sy-r, 2*r, 2*r, clr, false)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.LootChestComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if s.drawSprite(screen, id, pos.X, pos.Y, 1) {
			continue
		}
		r := float32(s.radius(id))
		sx, sy := s.WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledRect(screen, sx-r, sy-r*0.7, 2*r, 1.4*r, colorChest, false)
	}
}

func (s *RenderSystem) drawDrops(screen *ebiten.Image) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.DropComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := s.WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, sx, sy, 5, colorDrop, true)
	}
}

// drawHazards 预警中的打击只画轮廓，结算后画填充
func (s *RenderSystem) drawHazards(screen *ebiten.Image) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.HazardComponent, *components.PositionComponent](em) {
		hazard, _ := ecs.GetComponent[*components.HazardComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := s.WorldToScreen(pos.X, pos.Y)
		if !hazard.Triggered {
			vector.StrokeCircle(screen, sx, sy, float32(hazard.Radius), 2, colorStrikeWarning, true)
			continue
		}
		vector.DrawFilledCircle(screen, sx, sy, float32(hazard.Radius), colorBlast, true)
	}
}

func (s *RenderSystem) drawBeams(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.BeamComponent](s.entityManager) {
		beam, _ := ecs.GetComponent[*components.BeamComponent](s.entityManager, id)
		x0, y0 := s.WorldToScreen(beam.FromX, beam.FromY)
		x1, y1 := s.WorldToScreen(beam.ToX, beam.ToY)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, colorBeam, true)
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyProjectileComponent, *components.PositionComponent](em) {
		ep, _ := ecs.GetComponent[*components.EnemyProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := s.WorldToScreen(pos.X, pos.Y)
		if ep.Wall {
			vector.DrawFilledCircle(screen, sx, sy, float32(ep.HitRadius), colorWallSegment, true)
			continue
		}
		vector.DrawFilledCircle(screen, sx, sy, float32(s.radius(id)), colorEnemyShot, true)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := s.WorldToScreen(pos.X, pos.Y)
		clr := colorPlayerShot
		if proj.Grenade {
			clr = colorGrenade
		}
		vector.DrawFilledCircle(screen, sx, sy, float32(s.radius(id)), clr, true)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		scale := 1.0
		clr := colorEnemy
		if enemy.Minion {
			clr = colorMinion
		}
		if boss, ok := ecs.GetComponent[*components.BossComponent](em, id); ok {
			scale = boss.Scale
			clr = colorBoss
		}
		s.drawCircleEntity(screen, id, pos, s.radius(id), scale, clr)

		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && health.Ratio() < 1 {
			r := s.radius(id) * scale
			sx, sy := s.WorldToScreen(pos.X-r, pos.Y-r-8)
			s.drawBar(screen, sx, sy, float32(2*r), 4, health.Ratio())
		}
	}
}

func (s *RenderSystem) drawDecoy(screen *ebiten.Image) {
	if id, pos, ok := findDecoy(s.entityManager); ok {
		s.drawCircleEntity(screen, id, pos, s.radius(id), 1, colorDecoy)
	}
}

// drawPlayer 无敌闪烁期间隔 tick 隐藏
func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	em := s.entityManager
	id, pos, ok := findPlayer(em)
	if !ok {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	if player.Invulnerable > 0 && (player.Invulnerable/4)%2 == 1 {
		return
	}
	s.drawCircleEntity(screen, id, pos, s.radius(id), 1, colorPlayer)
	if player.IsShielded() {
		sx, sy := s.WorldToScreen(pos.X, pos.Y)
		vector.StrokeCircle(screen, sx, sy, float32(s.radius(id)+6), 2, colorShield, true)
	}
}

func (s *RenderSystem) drawBar(screen *ebiten.Image, x, y, w, h float32, ratio float64) {
	vector.DrawFilledRect(screen, x, y, w, h, colorHealthBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), h, colorHealthFill, false)
}

func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, str, s.face, op)
}

// drawHUD 调试用的基本 HUD：生命条、关卡、击杀与货币、横幅
func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	gs := s.gameState
	em := s.entityManager

	if id, _, ok := findPlayer(em); ok {
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			s.drawBar(screen, 12, 12, 200, 10, health.Ratio())
		}
	}

	line := fmt.Sprintf("Stage %d  Kills %d/%d  $%d", gs.Stage, gs.StageKills, gs.KillQuota, gs.Currency)
	if gs.IsBossStage {
		line = fmt.Sprintf("Stage %d  BOSS  $%d", gs.Stage, gs.Currency)
	}
	s.drawText(screen, line, 12, 28)

	if gs.Banner != "" {
		w, _ := text.Measure(gs.Banner, s.face, 0)
		s.drawText(screen, gs.Banner, gs.ViewWidth/2-w/2, gs.ViewHeight/3)
	}
	if gs.GameOver {
		msg := "GAME OVER"
		w, _ := text.Measure(msg, s.face, 0)
		s.drawText(screen, msg, gs.ViewWidth/2-w/2, gs.ViewHeight/2)
	}
}

package game

// AttackEvent records an enemy engaging the player on a simulation tick.
// Damage is zero when the shield absorbed the hit.
type AttackEvent struct {
	EnemyID int `json:"enemy_id"`
	Damage  int `json:"damage"`
}

// StepEnemies advances every active enemy one simulation tick. Enemies in
// engage range hold position and hit the player unless the shield is up;
// the rest step toward the player and are clamped to the map.
func StepEnemies(s *State) []AttackEvent {
	var events []AttackEvent
	target := s.Player.Position

	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Active {
			continue
		}

		dx := target.X - e.Position.X
		dz := target.Z - e.Position.Z
		d := PlanarDistance(target, e.Position)

		if d < EngageRange {
			dmg := 0
			if !s.Player.IsShielded() {
				dmg = EnemyDamage
				s.Player.Damage(dmg)
			}
			events = append(events, AttackEvent{EnemyID: e.ID, Damage: dmg})
			continue
		}

		e.Position = ClampPosition(Vec3{
			X: e.Position.X + e.Speed*dx/d,
			Y: e.Position.Y,
			Z: e.Position.Z + e.Speed*dz/d,
		})
	}
	return events
}

// TickBuffs counts one second off each active player buff.
func TickBuffs(p *Player) {
	p.SpeedBoost.tick()
	p.Shield.tick()
}

package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer. Every entity is created on it.
const Default ecs.LayerID = 0

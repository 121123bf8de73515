package service

import (
	"fmt"

	"github.com/polidanilo/LNI/internal/model"
)

// 俱乐部船只与部件参考数据

var gommoniNames = []string{
	"Gommorizzo giallo (Honda 1)",
	"Gommorizzo blu (Suzuki 3)",
	"Gommorizzo rosso (Suzuki 2)",
	"Forsea",
	"Marshall",
	"Staff Only (Honda 2)",
	"Arancio 1 (Suzuki 1)",
	"Arancio 1 (Evinrude)",
	"Arancio 3 (Johnson)",
}

var sailingParts = []string{
	"Albero", "Crocette", "Deriva", "Drizza Fiocco", "Drizza Randa", "Fiocco Randa",
	"Sartiame", "Scafo", "Scotta Fiocco", "Scotta Randa", "Stecche", "Timone", "Altro",
}

var partsByType = map[model.BoatType][]string{
	model.BoatTypeGommone:   {"Battello", "Motore", "Altro"},
	model.BoatTypeOptimist:  {"Albero", "Circuito", "Deriva", "Picco", "Randa", "Scafo", "Timone", "Altro"},
	model.BoatTypeFly:       sailingParts,
	model.BoatTypeEquipe:    sailingParts,
	model.BoatTypeCaravella: sailingParts,
	model.BoatTypeTrident:   sailingParts,
}

// referenceBoats 返回初始船只列表
func referenceBoats() []model.Boat {
	var boats []model.Boat
	add := func(t model.BoatType, names ...string) {
		for _, n := range names {
			boats = append(boats, model.Boat{Name: n, Type: t})
		}
	}

	add(model.BoatTypeGommone, gommoniNames...)

	for i := 1; i <= 20; i++ {
		add(model.BoatTypeOptimist, fmt.Sprintf("Optimist %d", i))
	}
	add(model.BoatTypeOptimist, "Openbic")

	for c := 'A'; c <= 'T'; c++ {
		if c == 'J' || c == 'K' {
			continue
		}
		add(model.BoatTypeFly, string(c))
	}
	add(model.BoatTypeFly, "Ultimo", "X", "Y", "Z", "Anna F", "K")
	for i := 1; i <= 11; i++ {
		add(model.BoatTypeFly, fmt.Sprintf("N%d", i))
	}

	for i := 1; i <= 13; i++ {
		add(model.BoatTypeEquipe, fmt.Sprintf("Equipe %d", i))
	}
	add(model.BoatTypeCaravella, "Roma", "Pinta", "Carla")
	for i := 1; i <= 4; i++ {
		add(model.BoatTypeTrident, fmt.Sprintf("Trident %d", i))
	}
	return boats
}

// referenceParts 按船只类型顺序返回部件列表
func referenceParts() []model.BoatPart {
	var parts []model.BoatPart
	for _, t := range model.BoatTypes {
		for _, name := range partsByType[t] {
			parts = append(parts, model.BoatPart{BoatType: t, PartName: name})
		}
	}
	return parts
}

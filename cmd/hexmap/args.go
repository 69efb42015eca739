package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/hexmap/pkg/hex"
	hmath "github.com/Faultbox/hexmap/pkg/math"
)

func parseCoord(q, r string) (hex.Coord, error) {
	qi, err := strconv.Atoi(q)
	if err != nil {
		return hex.Coord{}, fmt.Errorf("%w: q %q", errUsage, q)
	}
	ri, err := strconv.Atoi(r)
	if err != nil {
		return hex.Coord{}, fmt.Errorf("%w: r %q", errUsage, r)
	}
	return hex.New(qi, ri), nil
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", errUsage, s)
	}
	return float32(v), nil
}

func parseVec2(x, y string) (hmath.Vec2, error) {
	fx, err := parseFloat(x)
	if err != nil {
		return hmath.Vec2{}, err
	}
	fy, err := parseFloat(y)
	if err != nil {
		return hmath.Vec2{}, err
	}
	return hmath.Vec2{X: fx, Y: fy}, nil
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (hmath.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return hmath.Vec3{}, fmt.Errorf("%w: expected x,y,z, got %q", errUsage, s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := parseFloat(p)
		if err != nil {
			return hmath.Vec3{}, err
		}
		v[i] = f
	}
	return hmath.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// parseTiles parses a comma-separated tile list into a set.
func parseTiles(s string) (map[int]bool, error) {
	set := make(map[int]bool)
	if strings.TrimSpace(s) == "" {
		return set, nil
	}
	for _, p := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: tile %q", errUsage, p)
		}
		set[n] = true
	}
	return set, nil
}

// flagWasSet reports whether name was given explicitly.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

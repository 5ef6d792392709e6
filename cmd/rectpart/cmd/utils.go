package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"

	rectpart "github.com/arl/go-rectpart"
)

// convenience function that returns nil if file exists, or an error if it
// doesn't or if file can't be stat'ed
func fileExists(path string) (err error) {
	if _, err = os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// file does not exist
			err = fmt.Errorf("no such file '%v'", path)
		}
	}
	return err
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func marshalYAMLFile(path string, in interface{}) error {
	buf, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}

// polygonFile is the on-disk YAML document holding a polygon: the corner
// list in traversal order, one [x, y] pair per corner.
type polygonFile struct {
	Polygon [][2]int32 `yaml:"polygon"`
}

// rectanglesFile is the on-disk YAML document holding a partition result,
// one [minx, miny, maxx, maxy] quadruple per rectangle.
type rectanglesFile struct {
	Rectangles [][4]int32 `yaml:"rectangles"`
}

func readPolygonFile(path string) (rectpart.Polygon, error) {
	var pf polygonFile
	if err := unmarshalYAMLFile(path, &pf); err != nil {
		return nil, err
	}
	poly := make(rectpart.Polygon, len(pf.Polygon))
	for i, xy := range pf.Polygon {
		poly[i] = rectpart.Point{X: xy[0], Y: xy[1]}
	}
	return poly.Normalize(), nil
}

func writeRectanglesFile(path string, rects []rectpart.Rect) error {
	rf := rectanglesFile{Rectangles: make([][4]int32, len(rects))}
	for i, r := range rects {
		rf.Rectangles[i] = [4]int32{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
	}
	return marshalYAMLFile(path, &rf)
}

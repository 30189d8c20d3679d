package usecase

import (
	"slices"
	"strings"

	"github.com/Super-Badmen-Viper/NineFilm/domain"
	"golang.org/x/sync/errgroup"
)

// tagTextSep joins the distinct tag texts of one movie. The pipe never
// collides with the ^ separator of the catalog file.
const tagTextSep = "|"

// AggregateTags groups the tag set by movie id and combines the
// distinct texts of each movie into one string. Movies are
// hash-partitioned over the workers so each partition owns a disjoint
// id range and the partial maps merge without conflicts. Distinctness
// is exact-string: no trimming or case folding happens here. Texts are
// joined in lexicographic order so repeated runs produce identical
// output.
func AggregateTags(tags []domain.Tag, workers int) []domain.MovieTags {
	if workers < 1 {
		workers = 1
	}
	parts := make([]map[int][]string, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			texts := make(map[int]map[string]struct{})
			for i := range tags {
				t := &tags[i]
				if partition(t.Mid, workers) != w {
					continue
				}
				set := texts[t.Mid]
				if set == nil {
					set = make(map[string]struct{})
					texts[t.Mid] = set
				}
				set[t.Text] = struct{}{}
			}
			local := make(map[int][]string, len(texts))
			for mid, set := range texts {
				sorted := make([]string, 0, len(set))
				for text := range set {
					sorted = append(sorted, text)
				}
				slices.Sort(sorted)
				local[mid] = sorted
			}
			parts[w] = local
			return nil
		})
	}
	// Workers never fail; Wait only fences the partition writes.
	_ = g.Wait()

	var out []domain.MovieTags
	for _, local := range parts {
		for mid, sorted := range local {
			out = append(out, domain.MovieTags{Mid: mid, Tags: strings.Join(sorted, tagTextSep)})
		}
	}
	return out
}

func partition(mid, workers int) int {
	return ((mid % workers) + workers) % workers
}

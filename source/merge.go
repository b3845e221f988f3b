package source

// Merge combines sources into one. Later sources override earlier ones;
// when both sides hold a mapping under the same key, the mappings are
// merged key by key instead of replaced wholesale. Source mappings are
// deep-copied into the result, so loading never aliases a source's data.
func Merge(srcs ...Source) Source {
	return Func(func() (map[string]any, error) {
		merged := make(map[string]any)

		for _, src := range srcs {
			values, err := src.Load()
			if err != nil {
				return nil, err
			}

			mergeInto(merged, values)
		}

		return merged, nil
	})
}

func mergeInto(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		if !srcIsMap {
			dst[key] = value

			continue
		}

		dstMap, dstIsMap := dst[key].(map[string]any)
		if !dstIsMap {
			dstMap = make(map[string]any, len(srcMap))
			dst[key] = dstMap
		}

		mergeInto(dstMap, srcMap)
	}
}

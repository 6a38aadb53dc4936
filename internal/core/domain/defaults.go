package domain

// DefaultDimensions returns the catalog installed on first run, in sort
// order. Every call returns fresh slices.
func DefaultDimensions() []Dimension {
	return []Dimension{
		{
			Name:        "emotion_motivation",
			DisplayName: "情绪/动机",
			Description: "情感驱动和用户动机层面的创意角度",
			IsActive:    true,
			SortOrder:   0,
			Options: []Option{
				{
					Name:        "胜利瞬间",
					Description: "凯旋/王冠/光锥奖章定格；低角度+对角动势",
					Keywords:    []string{"胜利", "王冠", "奖章", "凯旋", "荣耀"},
					VisualHints: []string{"低角度拍摄", "对角构图", "金色光效", "定格瞬间"},
					Templates:   []string{"在{game}中获得{achievement}！{call_to_action}", "成为{game}世界的{title}，体验胜利荣耀！"},
					IsActive:    true,
					SortOrder:   0,
				},
				{
					Name:        "成长蜕变",
					Description: "前后对照（新手→英雄），高对比色",
					Keywords:    []string{"成长", "蜕变", "进化", "升级", "突破"},
					VisualHints: []string{"前后对比", "高对比色", "进阶效果", "变化过程"},
					Templates:   []string{"从{start_state}到{end_state}，见证你的成长！", "每一次升级都是蜕变，{game}助你成为英雄！"},
					IsActive:    true,
					SortOrder:   1,
				},
				{
					Name:        "稀缺限时",
					Description: "倒计时徽章+限定配色；强中心视觉",
					Keywords:    []string{"限时", "稀缺", "独家", "倒计时", "限量"},
					VisualHints: []string{"倒计时元素", "限定配色", "中心构图", "紧迫感设计"},
					Templates:   []string{"限时{time}！{item}即将绝版！", "稀缺机会，错过再等{time}！"},
					IsActive:    true,
					SortOrder:   2,
				},
				{
					Name:        "归属团队",
					Description: "阵营旗帜/徽记拼阵；群像金字塔",
					Keywords:    []string{"团队", "公会", "联盟", "伙伴", "协作"},
					VisualHints: []string{"团队构图", "金字塔排列", "旗帜元素", "群像展示"},
					Templates:   []string{"加入{guild}，与伙伴并肩作战！", "团结就是力量，{game}等你来战！"},
					IsActive:    true,
					SortOrder:   3,
				},
				{
					Name:        "美学沉浸",
					Description: "史诗天空/体积光/雾；大留白渲染气场",
					Keywords:    []string{"美学", "沉浸", "氛围", "艺术", "诗意"},
					VisualHints: []string{"史诗天空", "体积光", "雾气效果", "大留白设计"},
					Templates:   []string{"沉浸在{world}的美学世界中", "艺术级画面，诗意般体验"},
					IsActive:    true,
					SortOrder:   4,
				},
			},
		},
		{
			Name:        "value_proof",
			DisplayName: "价值证明",
			Description: "产品价值和可信度证明",
			IsActive:    true,
			SortOrder:   1,
			Options: []Option{
				{
					Name:        "三硬核卖点",
					Description: "三枚\"能力徽章\"（如清晰/流畅/适配）",
					Keywords:    []string{"性能", "清晰", "流畅", "稳定", "优化"},
					VisualHints: []string{"徽章设计", "三重展示", "技术指标", "性能标识"},
					Templates:   []string{"三大核心优势：{feature1}+{feature2}+{feature3}", "顶级{tech}技术，给你最佳体验！"},
					IsActive:    true,
					SortOrder:   0,
				},
				{
					Name:        "社证口碑",
					Description: "评分星+热评摘句（真实/可溯源）",
					Keywords:    []string{"评价", "口碑", "推荐", "好评", "用户"},
					VisualHints: []string{"星级评分", "用户评论", "社交证明", "推荐展示"},
					Templates:   []string{"{star}星好评！{review_count}万用户推荐", "用户都说好：\"{review_text}\""},
					IsActive:    true,
					SortOrder:   1,
				},
				{
					Name:        "权威背书",
					Description: "获奖/媒体 Logo 墙（依法务规范）",
					Keywords:    []string{"获奖", "权威", "认证", "媒体", "专业"},
					VisualHints: []string{"奖项展示", "Logo墙", "认证标识", "权威背景"},
					Templates:   []string{"荣获{award}，权威认证品质！", "{media}强力推荐，品质保证！"},
					IsActive:    true,
					SortOrder:   2,
				},
				{
					Name:        "对比替代",
					Description: "一图说服（竞对/旧方案→本方案）",
					Keywords:    []string{"对比", "升级", "更好", "超越", "替代"},
					VisualHints: []string{"对比图表", "升级箭头", "优势展示", "VS布局"},
					Templates:   []string{"告别{old_way}，拥抱{new_way}！", "比{competitor}更{advantage}的选择！"},
					IsActive:    true,
					SortOrder:   3,
				},
				{
					Name:        "零门槛",
					Description: "免费下载/新手礼包/返利角贴（图标化）",
					Keywords:    []string{"免费", "礼包", "新手", "福利", "零成本"},
					VisualHints: []string{"免费标识", "礼包图标", "福利角贴", "零门槛设计"},
					Templates:   []string{"完全免费！新手礼包等你来拿！", "零成本体验，{benefit}免费送！"},
					IsActive:    true,
					SortOrder:   4,
				},
			},
		},
		{
			Name:        "visual_hook",
			DisplayName: "视觉钩子",
			Description: "吸引眼球的视觉表现手法",
			IsActive:    true,
			SortOrder:   2,
			Options: []Option{
				{
					Name:        "极近特写",
					Description: "眼神/武器纹理/装备材质微距",
					Keywords:    []string{"细节", "纹理", "特写", "质感", "微距"},
					VisualHints: []string{"特写镜头", "细节展示", "材质质感", "微距效果"},
					Templates:   []string{"每个细节都精雕细琢，感受{item}的质感！", "极致细节，{feature}尽在掌握！"},
					IsActive:    true,
					SortOrder:   0,
				},
				{
					Name:        "夸张透视",
					Description: "武器破画框+速度线",
					Keywords:    []string{"动感", "冲击", "破框", "速度", "力量"},
					VisualHints: []string{"破框效果", "速度线", "夸张透视", "冲击力设计"},
					Templates:   []string{"破框而出的{weapon}，震撼登场！", "超越边界，感受{power}的冲击！"},
					IsActive:    true,
					SortOrder:   1,
				},
				{
					Name:        "强互补色",
					Description: "品牌主色×互补撞色",
					Keywords:    []string{"撞色", "对比", "鲜明", "视觉", "冲击"},
					VisualHints: []string{"互补色搭配", "强烈对比", "撞色设计", "视觉冲击"},
					Templates:   []string{"鲜明撞色，{brand}独特视觉体验！", "色彩碰撞，创造视觉奇迹！"},
					IsActive:    true,
					SortOrder:   2,
				},
				{
					Name:        "图形构图",
					Description: "环形/三角/对角线引导",
					Keywords:    []string{"构图", "几何", "引导", "焦点", "平衡"},
					VisualHints: []string{"几何构图", "视线引导", "焦点设计", "平衡美学"},
					Templates:   []string{"完美构图，聚焦{focus}！", "几何美学，{game}的艺术之美！"},
					IsActive:    true,
					SortOrder:   3,
				},
				{
					Name:        "超现实反转",
					Description: "上下颠倒/镜面世界/反向光影",
					Keywords:    []string{"超现实", "颠倒", "镜面", "奇幻", "反转"},
					VisualHints: []string{"颠倒效果", "镜面世界", "反转设计", "超现实风格"},
					Templates:   []string{"颠倒世界，发现{game}的奇幻！", "镜面反转，体验不一样的{experience}！"},
					IsActive:    true,
					SortOrder:   4,
				},
			},
		},
		{
			Name:        "benefit_narrative",
			DisplayName: "利益主叙事",
			Description: "核心利益点的叙事表达",
			IsActive:    true,
			SortOrder:   3,
			Options: []Option{
				{
					Name:        "一步到位",
					Description: "一键完成感的视觉隐喻（不谈操作）",
					Keywords:    []string{"简单", "一键", "便捷", "高效", "自动"},
					VisualHints: []string{"一键按钮", "简化流程", "高效标识", "便捷操作"},
					Templates:   []string{"一键{action}，简单高效！", "告别复杂操作，{game}让一切变简单！"},
					IsActive:    true,
					SortOrder:   0,
				},
				{
					Name:        "场景适配",
					Description: "地铁/夜灯/户外强光下也清晰可见",
					Keywords:    []string{"适配", "清晰", "任何场景", "随时随地", "灵活"},
					VisualHints: []string{"多场景展示", "清晰标识", "适配性强调", "场景切换"},
					Templates:   []string{"无论{scene}，{game}都清晰流畅！", "随时随地，完美适配你的生活！"},
					IsActive:    true,
					SortOrder:   1,
				},
				{
					Name:        "个性外观",
					Description: "皮肤/装扮/家园九宫格",
					Keywords:    []string{"个性", "定制", "皮肤", "装扮", "独特"},
					VisualHints: []string{"九宫格展示", "个性化元素", "定制选项", "外观变化"},
					Templates:   []string{"{count}种{item}，打造专属{character}！", "个性定制，展现独特的你！"},
					IsActive:    true,
					SortOrder:   2,
				},
				{
					Name:        "资源获取感",
					Description: "掉落雨/宝箱/稀有度边框",
					Keywords:    []string{"掉落", "奖励", "宝箱", "收获", "丰富"},
					VisualHints: []string{"掉落效果", "宝箱开启", "稀有边框", "奖励雨"},
					Templates:   []string{"丰富{reward}掉落不停，收获满满！", "开启{chest}，发现惊喜奖励！"},
					IsActive:    true,
					SortOrder:   3,
				},
				{
					Name:        "掌控策略感",
					Description: "上帝视角路径高亮/指挥手势剪影",
					Keywords:    []string{"策略", "掌控", "指挥", "全局", "智慧"},
					VisualHints: []string{"上帝视角", "路径高亮", "指挥手势", "策略图"},
					Templates:   []string{"运筹帷幄，掌控{battlefield}！", "策略制胜，{game}考验你的智慧！"},
					IsActive:    true,
					SortOrder:   4,
				},
			},
		},
		{
			Name:        "event_seasonal",
			DisplayName: "事件/时令",
			Description: "时效性和事件性的创意角度",
			IsActive:    true,
			SortOrder:   4,
			Options: []Option{
				{
					Name:        "节日限定",
					Description: "中秋/万圣/圣诞主题配色+剪影",
					Keywords:    []string{"节日", "限定", "庆祝", "主题", "特别"},
					VisualHints: []string{"节日配色", "主题剪影", "庆祝元素", "限定设计"},
					Templates:   []string{"{festival}特别版，限时体验！", "节日狂欢，{game}陪你庆祝{holiday}！"},
					IsActive:    true,
					SortOrder:   0,
				},
				{
					Name:        "赛季更迭",
					Description: "世界变化前后景对照（不谈数值）",
					Keywords:    []string{"赛季", "更新", "变化", "新版本", "进化"},
					VisualHints: []string{"前后对比", "世界变化", "版本更新", "季节转换"},
					Templates:   []string{"新赛季来临，{world}大变样！", "版本更新，体验全新{content}！"},
					IsActive:    true,
					SortOrder:   1,
				},
				{
					Name:        "周年纪念",
					Description: "时间回顾拼贴（Logo年轮）",
					Keywords:    []string{"周年", "纪念", "历史", "经典", "里程碑"},
					VisualHints: []string{"年轮设计", "时间轴", "历史回顾", "纪念标识"},
					Templates:   []string{"{years}年历程，感谢有你！", "周年庆典，{game}与你共同成长！"},
					IsActive:    true,
					SortOrder:   2,
				},
				{
					Name:        "联动视觉",
					Description: "仅授权的\"世界相遇\"符号化元素",
					Keywords:    []string{"联动", "合作", "跨界", "相遇", "特别"},
					VisualHints: []string{"联动标识", "双品牌元素", "合作符号", "跨界设计"},
					Templates:   []string{"{brand1}×{brand2}，史诗联动！", "两个世界的相遇，{game}特别合作！"},
					IsActive:    true,
					SortOrder:   3,
				},
				{
					Name:        "地区化",
					Description: "在地节庆/色彩/符号（合规本地化）",
					Keywords:    []string{"本地", "地区", "文化", "符号", "特色"},
					VisualHints: []string{"地域色彩", "文化符号", "本地元素", "区域特色"},
					Templates:   []string{"融入{region}文化，{game}更懂你！", "本地化体验，感受{culture}魅力！"},
					IsActive:    true,
					SortOrder:   4,
				},
			},
		},
		{
			Name:        "light_entertainment",
			DisplayName: "轻娱乐/梗化",
			Description: "轻松娱乐和网络梗文化",
			IsActive:    true,
			SortOrder:   5,
			Options: []Option{
				{
					Name:        "表情包化",
					Description: "夸张表情+大字报金句",
					Keywords:    []string{"表情包", "夸张", "搞笑", "梗", "有趣"},
					VisualHints: []string{"夸张表情", "大字体", "表情包风格", "幽默元素"},
					Templates:   []string{"{expression}！{game}就是这么{adjective}！", "这表情，玩{game}的都懂！"},
					IsActive:    true,
					SortOrder:   0,
				},
				{
					Name:        "三格剧照",
					Description: "前–中–后的连环画式",
					Keywords:    []string{"连环画", "剧情", "故事", "过程", "变化"},
					VisualHints: []string{"三格布局", "连环画风", "故事线", "时间推进"},
					Templates:   []string{"三步走：{step1}→{step2}→{step3}", "看图说话：{game}的精彩时刻！"},
					IsActive:    true,
					SortOrder:   1,
				},
				{
					Name:        "谐音押韵",
					Description: "地区化短句+配色（谨慎使用）",
					Keywords:    []string{"谐音", "押韵", "朗朗上口", "记忆点", "传播"},
					VisualHints: []string{"韵律感设计", "文字游戏", "音韵配色", "朗朗上口"},
					Templates:   []string{"{rhyme1}，{rhyme2}，{game}真{rhyme3}！", "{wordplay}，玩{game}就对了！"},
					IsActive:    true,
					SortOrder:   2,
				},
				{
					Name:        "手作纸艺",
					Description: "低饱和+颗粒营造亲近感",
					Keywords:    []string{"手作", "温暖", "亲切", "质朴", "自然"},
					VisualHints: []string{"纸艺质感", "低饱和度", "颗粒效果", "手工感"},
					Templates:   []string{"手作质感，{game}的温暖陪伴", "简单美好，{game}如纸艺般精致"},
					IsActive:    true,
					SortOrder:   3,
				},
				{
					Name:        "信息图式",
					Description: "极简图标+线框，像\"说明书\"",
					Keywords:    []string{"简洁", "图标", "说明", "清晰", "直观"},
					VisualHints: []string{"极简设计", "线框图标", "说明书风格", "信息图表"},
					Templates:   []string{"{game}使用说明：{instruction}", "一图看懂{game}的{feature}!"},
					IsActive:    true,
					SortOrder:   4,
				},
			},
		},
	}
}
